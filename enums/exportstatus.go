package enums

type ExportStatus string

const (
	// ExportStatusEmpty means there was nothing to export.
	ExportStatusEmpty ExportStatus = "empty"

	// ExportStatusCollected means words were collected but not handed to an exporter.
	ExportStatusCollected ExportStatus = "collected"

	ExportStatusCopied ExportStatus = "copied"
	ExportStatusFailed ExportStatus = "failed"
)
