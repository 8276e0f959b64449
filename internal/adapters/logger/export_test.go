// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// EntryMessage returns the message of a collected entry.
func EntryMessage(e errorEntry) string { return e.message }

// EntryMetadataKeys returns the metadata keys of a collected entry in order.
func EntryMetadataKeys(e errorEntry) []string {
	keys := make([]string, len(e.metadata))
	for i, kv := range e.metadata {
		keys[i] = kv.key
	}
	return keys
}
