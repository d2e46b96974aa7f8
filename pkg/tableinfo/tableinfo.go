package tableinfo

const (
	ProjectsTableName = "projects"

	ProjectIDColumn                 = "id"
	ProjectNameColumn               = "name"
	ProjectAuthWebhookURLColumn     = "auth_webhook_url"
	ProjectAuthWebhookMethodsColumn = "auth_webhook_methods"
	ProjectPublicKeyColumn          = "public_key"
	ProjectSecretKeyColumn          = "secret_key"
	ProjectCreatedAtColumn          = "created_at"
)

const (
	DocumentsTableName = "documents"

	DocumentIDColumn         = "id"
	DocumentProjectIDColumn  = "project_id"
	DocumentKeyColumn        = "key"
	DocumentSnapshotColumn   = "snapshot"
	DocumentCreatedAtColumn  = "created_at"
	DocumentAccessedAtColumn = "accessed_at"
	DocumentUpdatedAtColumn  = "updated_at"
)
