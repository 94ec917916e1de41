package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// objectCmd groups the object commands
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage objects in a bucket",
}

var objectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List object keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		names, err := rt.facade().ListObjectNames(cmd.Context(), rt.bucketFlag(cmd))
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var objectPutCmd = &cobra.Command{
	Use:   "put <file|-> <key>",
	Short: "Upload a local file, or stdin with -",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		bucket := rt.bucketFlag(cmd)
		svc := rt.facade()

		var ok bool
		if args[0] == "-" {
			contentType, _ := cmd.Flags().GetString("content-type")
			ok, err = svc.UploadStream(cmd.Context(), bucket, args[1], cmd.InOrStdin(), contentType)
		} else {
			ok, err = svc.UploadFile(cmd.Context(), bucket, args[1], args[0])
		}
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("upload of %s to %s/%s did not store any data", args[0], bucket, args[1])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s/%s\n", bucket, args[1])
		return nil
	},
}

var objectGetCmd = &cobra.Command{
	Use:   "get <key> [file]",
	Short: "Download an object to a file, or to stdout",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		bucket := rt.bucketFlag(cmd)
		svc := rt.facade()

		offset, _ := cmd.Flags().GetInt64("offset")
		length, _ := cmd.Flags().GetInt64("length")
		hasOffset := cmd.Flags().Changed("offset")
		hasLength := cmd.Flags().Changed("length")

		if len(args) == 2 && !hasOffset && !hasLength {
			ok, err := svc.DownloadFile(cmd.Context(), bucket, args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s/%s is missing or empty", bucket, args[0])
			}
			return nil
		}

		var reader io.ReadCloser
		if hasOffset || hasLength {
			var lengthPtr *int64
			if hasLength {
				lengthPtr = &length
			}
			reader, err = svc.DownloadRange(cmd.Context(), bucket, args[0], offset, lengthPtr)
		} else {
			reader, err = svc.Download(cmd.Context(), bucket, args[0])
		}
		if err != nil {
			return err
		}
		defer reader.Close()

		if len(args) == 1 {
			_, err = io.Copy(cmd.OutOrStdout(), reader)
			return err
		}
		return writeFile(args[1], reader)
	},
}

// writeFile copies r into path, reporting a failed close as a failed write.
func writeFile(path string, r io.Reader) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write %s: %w", path, cerr)
		}
	}()

	_, err = io.Copy(f, r)
	return err
}

var objectRemoveCmd = &cobra.Command{
	Use:   "rm <key>...",
	Short: "Remove one or more objects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		bucket := rt.bucketFlag(cmd)
		svc := rt.facade()

		if len(args) == 1 {
			ok, err := svc.RemoveObject(cmd.Context(), bucket, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("bucket %s does not exist", bucket)
			}
			return nil
		}

		failed, err := svc.RemoveObjects(cmd.Context(), bucket, args)
		if err != nil {
			return err
		}
		for _, key := range failed {
			fmt.Fprintf(cmd.ErrOrStderr(), "not removed: %s\n", key)
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d of %d objects were not removed", len(failed), len(args))
		}
		return nil
	},
}

var objectStatCmd = &cobra.Command{
	Use:   "stat <key>",
	Short: "Show object metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		info, err := rt.facade().StatObject(cmd.Context(), rt.bucketFlag(cmd), args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"key":           info.Key,
			"size":          info.Size,
			"content_type":  info.ContentType,
			"etag":          info.ETag,
			"last_modified": info.LastModified,
		})
	},
}

var objectURLCmd = &cobra.Command{
	Use:   "url <key>",
	Short: "Print the direct URL of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		u, err := rt.facade().ObjectURL(cmd.Context(), rt.bucketFlag(cmd), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(objectCmd)
	objectCmd.AddCommand(objectListCmd, objectPutCmd, objectGetCmd, objectRemoveCmd, objectStatCmd, objectURLCmd)

	objectCmd.PersistentFlags().String("bucket", "", "Bucket name (defaults to STORAGE_BUCKET)")
	objectPutCmd.Flags().String("content-type", "application/octet-stream", "Content type for stdin uploads")
	objectGetCmd.Flags().Int64("offset", 0, "Start of the byte range")
	objectGetCmd.Flags().Int64("length", 0, "Length of the byte range")
}
