package cmd

import (
	"fmt"

	"bucket-manager/core/utils"
	"bucket-manager/feature/objectstore"

	"github.com/spf13/cobra"
)

// presignCmd groups the presigned URL commands
var presignCmd = &cobra.Command{
	Use:   "presign",
	Short: "Generate presigned URLs",
}

var presignGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Generate a presigned download URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		expires, _ := cmd.Flags().GetInt("expires")
		u, err := rt.facade().PresignedGetURL(cmd.Context(), rt.bucketFlag(cmd), args[0], expires)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

var presignPutCmd = &cobra.Command{
	Use:   "put <key>",
	Short: "Generate a presigned upload URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unitName, _ := cmd.Flags().GetString("unit")
		unit, err := utils.ParseTimeUnit(unitName)
		if err != nil {
			return err
		}

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		expires, _ := cmd.Flags().GetInt("expires")
		u, err := rt.facade().PresignedPutURL(cmd.Context(), rt.bucketFlag(cmd), args[0], expires, unit)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(presignCmd)
	presignCmd.AddCommand(presignGetCmd, presignPutCmd)

	presignCmd.PersistentFlags().String("bucket", "", "Bucket name (defaults to STORAGE_BUCKET)")
	presignCmd.PersistentFlags().Int("expires", objectstore.DefaultExpirySeconds, "Expiry (1 second to 7 days)")
	presignPutCmd.Flags().String("unit", "s", "Expiry unit: s, m, h or d")
}
