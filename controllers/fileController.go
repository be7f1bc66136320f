package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/adityab94/FitForge/services"
	"github.com/gin-gonic/gin"
)

// readUpload reads the multipart "file" field, refusing bodies over maxBytes.
func readUpload(c *gin.Context, maxBytes int64) (services.Upload, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return services.Upload{}, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return services.Upload{}, false
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return services.Upload{}, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return services.Upload{}, false
	}
	return services.Upload{
		Data:        data,
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, true
}

func UploadAvatar(svc *services.Services, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		file, ok := readUpload(c, maxBytes)
		if !ok {
			return
		}
		ref, err := svc.UploadAvatar(c.Request.Context(), userID, file)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ref)
	}
}

// ServeFile is public: file ids are unguessable and avatars are shown to
// unauthenticated image requests.
func ServeFile(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, contentType, err := svc.GetFile(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("X-Content-Type-Options", "nosniff")
		c.Data(http.StatusOK, servedContentType(contentType), data)
	}
}

// servedContentType passes raster images through; anything else, SVG
// included, is sent as opaque bytes so it cannot render on this origin.
func servedContentType(contentType string) string {
	if strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "image/svg") {
		return contentType
	}
	return "application/octet-stream"
}

func UploadProgressPhoto(svc *services.Services, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		file, ok := readUpload(c, maxBytes)
		if !ok {
			return
		}
		in := services.PhotoInput{Label: c.PostForm("label"), Date: c.PostForm("date")}
		photo, err := svc.UploadPhoto(c.Request.Context(), userID, in, file)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, photo)
	}
}

func GetProgressPhotos(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		photos, err := svc.ListPhotos(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, photos)
	}
}

func DeleteProgressPhoto(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		if err := svc.DeletePhoto(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
	}
}
