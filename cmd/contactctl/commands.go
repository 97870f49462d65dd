package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rebirthstudio/portfolio-backend/pkg/contactclient"
	"github.com/rebirthstudio/portfolio-backend/pkg/contactform"
	"github.com/spf13/cobra"
)

var errInvalid = errors.New("submission is invalid")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contactctl",
		Short: "Check and send portfolio contact form submissions",
		Long: `contactctl runs the contact form rules locally and can post a submission
to a running portfolio backend, the same way the site's form does.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newValidateCmd(), newSendCmd())
	return rootCmd
}

func addSubmissionFlags(cmd *cobra.Command, sub *contactform.Submission) {
	cmd.Flags().StringVar(&sub.Name, "name", "", "Sender name")
	cmd.Flags().StringVar(&sub.Email, "email", "", "Sender email address")
	cmd.Flags().StringVar(&sub.Message, "message", "", "Message body")
}

func newValidateCmd() *cobra.Command {
	var sub contactform.Submission

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Print the field errors a submission would get",
		Example: `  contactctl validate --name Jo --email jo@x.com --message "Hello there!"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldErrs := contactform.Validate(sub.Normalize())
			if fieldErrs.Valid() {
				cmd.Println("OK")
				return nil
			}
			printFields(cmd, fieldErrs.Messages())
			if failure, ok := fieldErrs.Failure(); ok {
				cmd.Printf("server would answer: %s (%s)\n", failure.Message, failure.Kind)
			}
			return errInvalid
		},
	}
	addSubmissionFlags(cmd, &sub)
	return cmd
}

func newSendCmd() *cobra.Command {
	var (
		sub     contactform.Submission
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Post a submission to a running backend",
		Example: `  contactctl send --url http://localhost:8080 --name Jo --email jo@x.com --message "Hello there!"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := contactclient.NewClient(baseURL).Submit(ctx, sub)
			if result != nil {
				cmd.Println(result.Toast)
				printFields(cmd, result.Fields)
			}
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("backend answered with status %d", result.Status)
			}
			cmd.Printf("message id: %s\n", result.ID)
			return nil
		},
	}
	addSubmissionFlags(cmd, &sub)
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Backend base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	return cmd
}

func printFields(cmd *cobra.Command, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd.Printf("  %s: %s\n", name, fields[name])
	}
}
