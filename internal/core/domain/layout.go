package domain

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "lddgraph.yaml"

	// ConfigEnvVar names an explicit configuration file, bypassing discovery.
	ConfigEnvVar = "LDDGRAPH_CONFIG"

	// DefaultListerCommand is the dependency lister run against binaries.
	DefaultListerCommand = "ldd"

	// DefaultListerFlag asks the lister for symbol version information.
	DefaultListerFlag = "-v"

	// DefaultGraphName is the identifier of the emitted digraph.
	DefaultGraphName = "G"

	// DefaultNotFoundPath is the path of the shared sink for unresolved libraries.
	DefaultNotFoundPath = "not found"

	// SummaryNodeID is the DOT identifier of the informational node.
	SummaryNodeID = "lddgraph:summary"

	// LogFormatPretty selects human readable diagnostics.
	LogFormatPretty = "pretty"

	// LogFormatJSON selects JSON diagnostics.
	LogFormatJSON = "json"
)
