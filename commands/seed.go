package commands

import (
	"fmt"

	"github.com/adityab94/FitForge/config"
	"github.com/adityab94/FitForge/logging"
	"github.com/adityab94/FitForge/services"
	"github.com/spf13/cobra"
)

var (
	seedEmail    string
	seedPassword string
	seedName     string
)

var seedUserCmd = &cobra.Command{
	Use:   "seed-user",
	Short: "Create an account with sample weight logs and workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := buildApp(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer a.closer(ctx)

		res, err := a.svc.RegisterWithDemoData(ctx, services.RegisterInput{
			Email:    seedEmail,
			Password: seedPassword,
			Name:     seedName,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\ntoken: %s\n", res.User.Email, res.User.ID, res.Token)
		return nil
	},
}

func init() {
	seedUserCmd.Flags().StringVar(&seedEmail, "email", "", "Account email")
	seedUserCmd.Flags().StringVar(&seedPassword, "password", "", "Account password (min 6 characters)")
	seedUserCmd.Flags().StringVar(&seedName, "name", "Athlete", "Display name")
	_ = seedUserCmd.MarkFlagRequired("email")
	_ = seedUserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(seedUserCmd)
}
