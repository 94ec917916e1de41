package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// bucketCmd groups the bucket commands
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage buckets",
}

var bucketExistsCmd = &cobra.Command{
	Use:   "exists <name>",
	Short: "Check whether a bucket exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		exists, err := rt.facade().BucketExists(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), exists)
		return nil
	},
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a bucket if it does not exist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		created, err := rt.facade().MakeBucket(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Bucket %s created\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Bucket %s already exists\n", args[0])
		}
		return nil
	},
}

var bucketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List buckets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		buckets, err := rt.facade().ListBuckets(cmd.Context())
		if err != nil {
			return err
		}
		for _, b := range buckets {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.CreationDate.Format("2006-01-02 15:04:05"), b.Name)
		}
		return nil
	},
}

var bucketRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a bucket that holds no data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		removed, err := rt.facade().RemoveBucket(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("bucket %s was not removed: missing or not empty", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Bucket %s removed\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bucketCmd)
	bucketCmd.AddCommand(bucketExistsCmd, bucketCreateCmd, bucketListCmd, bucketRemoveCmd)
}
