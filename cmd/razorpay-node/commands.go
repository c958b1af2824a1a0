package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/razorpay/razorpay-workflow-node/pkg/credentials"
	"github.com/razorpay/razorpay-workflow-node/pkg/host"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/node"
	"github.com/razorpay/razorpay-workflow-node/pkg/operations"
)

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "key-id",
			Usage:    "Razorpay API key ID",
			Required: true,
			Sources:  cli.EnvVars("RAZORPAY_KEY_ID"),
		},
		&cli.StringFlag{
			Name:     "key-secret",
			Usage:    "Razorpay API key secret",
			Required: true,
			Sources:  cli.EnvVars("RAZORPAY_KEY_SECRET"),
		},
		&cli.StringFlag{
			Name:    "environment",
			Usage:   "Key environment (live or test)",
			Value:   "test",
			Sources: cli.EnvVars("RAZORPAY_ENVIRONMENT"),
		},
	}
}

func credentialsFromFlags(command *cli.Command) *models.Credentials {
	return &models.Credentials{
		Environment: models.Environment(command.String("environment")),
		KeyID:       command.String("key-id"),
		KeySecret:   command.String("key-secret"),
	}
}

func operationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "operations",
		Aliases: []string{"ops"},
		Usage:   "List the available operations",
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			reg := newRegistry(log.WithModule("cli"))

			for _, operation := range reg.Operations() {
				fmt.Printf("%-32s %-12s %s\n", operation.ID(), operation.Resource(), operation.Action())
			}

			return nil
		},
	}
}

func describeCommand() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "Print the JSON schema of an operation",
		ArgsUsage: "<operation-id>",
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			operationID := command.Args().First()
			if operationID == "" {
				return fmt.Errorf("missing operation id argument")
			}

			operation, err := newRegistry(log.WithModule("cli")).Operation(operationID)
			if err != nil {
				return err
			}

			return printJSON(map[string]any{
				"id":          operation.ID(),
				"resource":    operation.Resource(),
				"name":        operation.Name(),
				"description": operation.Description(),
				"action":      operation.Action(),
				"schema":      operation.Schema(),
			})
		},
	}
}

func executeCommand() *cli.Command {
	flags := append(credentialFlags(),
		&cli.StringFlag{
			Name:    "items",
			Aliases: []string{"i"},
			Usage:   "Path to a JSON file with the input items ('-' for stdin)",
			Value:   "-",
		},
		&cli.BoolFlag{
			Name:  "continue-on-fail",
			Usage: "Produce error items for failed inputs instead of aborting",
		},
	)

	return &cli.Command{
		Name:  "execute",
		Usage: "Run the node over a set of input items",
		Flags: flags,
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			items, err := readItems(command.String("items"))
			if err != nil {
				return err
			}

			ectx := host.NewContext(items,
				host.WithCredentials(operations.CredentialName, credentialsFromFlags(command)),
				host.WithContinueOnFail(command.Bool("continue-on-fail")),
			)

			logger := log.WithModule("cli")
			razorpayNode := node.NewRazorpayNode(ectx.ExecutionID, newRegistry(logger))

			results, err := razorpayNode.Execute(ctx, ectx)
			if err != nil {
				return err
			}

			return printJSON(results)
		},
	}
}

func testCredentialsCommand() *cli.Command {
	return &cli.Command{
		Name:  "test-credentials",
		Usage: "Verify a Razorpay key pair against the gateway",
		Flags: credentialFlags(),
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			ectx := host.NewContext(nil)

			credentialType := credentials.NewRazorpayAPI()
			if err := credentialType.Test(ctx, ectx.HTTPDoer(), credentialsFromFlags(command)); err != nil {
				return err
			}

			fmt.Println("Credentials OK")

			return nil
		},
	}
}

func readItems(path string) ([]map[string]any, error) {
	var reader io.Reader = os.Stdin

	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open items file: %w", err)
		}

		defer func() {
			_ = file.Close()
		}()

		reader = file
	}

	var items []map[string]any
	if err := json.NewDecoder(reader).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	return items, nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
