package cli

import (
	"fmt"

	"github.com/pageza/ourkitchen/backend/config"
	"github.com/spf13/cobra"
)

var bucketPolicyCmd = &cobra.Command{
	Use:   "bucket-policy",
	Short: "Allow public reads of uploaded recipe images",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s3Config, err := config.NewS3Config(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if err := s3Config.SetupBucketPolicy(cmd.Context()); err != nil {
			return fmt.Errorf("failed to set bucket policy: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Public read policy applied to %s\n", s3Config.BucketName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bucketPolicyCmd)
}
