package cli

import (
	"fmt"

	"docadmin/internal/model"

	"github.com/spf13/cobra"
)

func newProjectsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
	}
	cmd.AddCommand(
		newProjectsListCmd(opts),
		newProjectsGetCmd(opts),
		newProjectsCreateCmd(opts),
		newProjectsUpdateCmd(opts),
	)
	return cmd
}

func newProjectsListCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			projects, err := client.ListProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), projects)
			}

			t := newTable(cmd.OutOrStdout(), "NAME", "PUBLIC KEY", "WEBHOOK URL", "CREATED")
			for _, p := range projects {
				t.addRow(p.Name, p.PublicKey, orDash(p.AuthWebhookURL), formatDate(p.CreatedAt))
			}
			return t.render()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newProjectsGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			p, err := client.GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get project: %w", err)
			}
			return renderProject(cmd, p)
		},
	}
}

func newProjectsCreateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			p, err := client.CreateProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("create project: %w", err)
			}
			return renderProject(cmd, p)
		},
	}
}

func newProjectsUpdateCmd(opts *globalOptions) *cobra.Command {
	var (
		name       string
		webhookURL string
		methods    []string
	)

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update project settings",
		Long: `Update project settings. Only the flags given are changed.

Valid webhook methods: ActivateClient, DeactivateClient, AttachDocument, DetachDocument,
RemoveDocument, PushPull, WatchDocuments, Broadcast.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields model.UpdatableProjectFields
			flags := cmd.Flags()
			if flags.Changed("name") {
				fields.Name = &name
			}
			if flags.Changed("webhook-url") {
				fields.AuthWebhookURL = &webhookURL
			}
			if flags.Changed("webhook-methods") {
				fields.AuthWebhookMethods = &methods
			}
			if fields.IsEmpty() {
				return fmt.Errorf("nothing to update: pass --name, --webhook-url or --webhook-methods")
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}
			p, err := client.UpdateProject(cmd.Context(), args[0], fields)
			if err != nil {
				return fmt.Errorf("update project: %w", err)
			}
			return renderProject(cmd, p)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&webhookURL, "webhook-url", "", "auth webhook URL")
	cmd.Flags().StringSliceVar(&methods, "webhook-methods", nil, "comma-separated auth webhook methods")
	return cmd
}

func renderProject(cmd *cobra.Command, p model.Project) error {
	t := newTable(cmd.OutOrStdout(), "FIELD", "VALUE")
	t.addRow("name", p.Name)
	t.addRow("id", p.ID)
	t.addRow("public key", p.PublicKey)
	t.addRow("secret key", p.SecretKey)
	t.addRow("webhook url", orDash(p.AuthWebhookURL))
	t.addRow("webhook methods", joinMethods(p.AuthWebhookMethods))
	t.addRow("created", formatDate(p.CreatedAt))
	return t.render()
}
