package repository

import (
	"bytes"
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSBlobs stores files in the database's default GridFS bucket. File ids
// are ObjectID hex strings.
type GridFSBlobs struct {
	db *mongo.Database
}

func NewGridFSBlobs(db *mongo.Database) *GridFSBlobs {
	return &GridFSBlobs{db: db}
}

// bucket opens a bucket for one call so the ctx deadline can be applied
// without racing other requests.
func (g *GridFSBlobs) bucket(ctx context.Context) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(g.db)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := b.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
		if err := b.SetWriteDeadline(deadline); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (g *GridFSBlobs) Put(ctx context.Context, data []byte, name, contentType string) (string, error) {
	if contentType == "" {
		contentType = defaultContentType
	}
	b, err := g.bucket(ctx)
	if err != nil {
		return "", err
	}
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "content_type", Value: contentType}})
	id, err := b.UploadFromStream(name, bytes.NewReader(data), opts)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (g *GridFSBlobs) Get(ctx context.Context, id string) ([]byte, string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, "", ErrNotFound
	}
	b, err := g.bucket(ctx)
	if err != nil {
		return nil, "", err
	}
	stream, err := b.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, "", err
	}
	contentType := defaultContentType
	if file := stream.GetFile(); file != nil && len(file.Metadata) > 0 {
		if ct, ok := file.Metadata.Lookup("content_type").StringValueOK(); ok && ct != "" {
			contentType = ct
		}
	}
	return data, contentType, nil
}

func (g *GridFSBlobs) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	b, err := g.bucket(ctx)
	if err != nil {
		return err
	}
	if err := b.Delete(oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
