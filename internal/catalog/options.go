package catalog

// Group describes one checkbox group: its catalog, the flat form keys that
// back it and the lead-in used for its narrative sentence.
type Group struct {
	ID     string
	Label  string
	Prefix string
	// CustomKey and EnableKey name the free-text override; empty when the
	// group has none.
	CustomKey string
	EnableKey string
	// SplitCustom treats the override as a comma-separated list.
	SplitCustom bool
	// Indexed groups key their checkboxes by option position instead of label.
	Indexed bool
	LeadIn  string
	Options []string
}

var (
	PresentationUsers = Group{
		ID: "presentation.users", Label: "Intended users",
		Prefix: "pres_user_", CustomKey: "pres_user_custom", EnableKey: "pres_user_custom_enable",
		LeadIn: "This solution targets ",
		Options: []string{
			"Network Engineers",
			"IT",
			"Operations",
			"Help Desk",
			"Other IT Organizations",
			"Any User",
			"Authorized Users",
		},
	}
	PresentationInteractions = Group{
		ID: "presentation.interactions", Label: "Interaction methods",
		Prefix: "pres_interact_", CustomKey: "pres_interact_custom", EnableKey: "pres_interact_custom_enable",
		LeadIn: "Users will interact with the solution via ",
		Options: []string{
			"CLI",
			"Purpose-built Web GUI",
			"Other GUI",
			"API",
			"Commercial Product/GUI",
			"Open Source Product/GUI",
		},
	}
	PresentationTools = Group{
		ID: "presentation.tools", Label: "Presentation tools",
		Prefix: "pres_tool_", CustomKey: "pres_tool_custom", EnableKey: "pres_tool_custom_enable",
		LeadIn: "The presentation layer will be built using ",
		Options: []string{
			"Python",
			"Python Web Framework (Streamlit, Flask, etc.)",
			"General Web Framework",
			"Automation Framework",
			"REST API",
			"GraphQL API",
			"Custom API",
		},
	}
	PresentationAuth = Group{
		ID: "presentation.auth", Label: "Authentication",
		Prefix: "pres_auth_", CustomKey: "pres_auth_other_text", EnableKey: "pres_auth_other_enable",
		LeadIn: "Presentation authentication will use ",
		Options: []string{
			"No Authentication (suitable only for demos and very specific use cases)",
			"Repository authorization/sharing",
			"Built-in (to the automation) Authentication via Username/Password or TOKEN",
			"Custom Authentication to external system (AD, SSH Keys, OAUTH2)",
		},
	}

	IntentDevelopment = Group{
		ID: "intent.development", Label: "Intent development",
		Prefix: "intent_dev_", CustomKey: "intent_dev_custom", EnableKey: "intent_dev_custom_enable",
		SplitCustom: true,
		LeadIn:      "We will develop ",
		Options: []string{
			"Templates",
			"Policies",
			"Service Profiles",
			"Model-driven (data models)",
			"Declarative (YAML/JSON)",
			"Forms/GUI",
			"Domain-specific language (DSL)",
			"GitOps workflow (PRs/Reviews)",
			"API-driven",
			"Import from Source of Truth (CMDB/IPAM/Inventory/Git)",
		},
	}
	IntentProvided = Group{
		ID: "intent.provided", Label: "Intent provided as",
		Prefix: "intent_prov_", CustomKey: "intent_prov_custom", EnableKey: "intent_prov_custom_enable",
		SplitCustom: true,
		LeadIn:      "We will use existing ",
		Options: []string{
			"Text file",
			"Serialized format (JSON, YAML)",
			"CSV",
			"Excel",
			"API",
		},
	}

	ObservabilityMethods = Group{
		ID: "observability.methods", Label: "State representation",
		Prefix: "obs_state_",
		LeadIn: "State will be represented using ",
		Options: []string{
			"Manual",
			"Purpose-built Python Script",
			"API call",
		},
	}
	ObservabilityTools = Group{
		ID: "observability.tools", Label: "Observability tools",
		Prefix: "obs_tool_", CustomKey: "obs_tool_other_text", EnableKey: "obs_tool_other_enable",
		LeadIn: "Observability tools include ",
		Options: []string{
			"Open Source Software",
			"Commercial/Enterprise Product",
			"Network Vendor Product (Cisco Catalyst Center, Arista CVP, etc.)",
			"Custom Python Scripts",
		},
	}

	CollectorMethods = Group{
		ID: "collector.methods", Label: "Collection methods",
		Prefix: "collector_method_", CustomKey: "collector_methods_other", EnableKey: "collector_methods_other_enable",
		LeadIn:  "Data will be collected using ",
		Options: []string{"SNMP", "CLI/SSH", "NETCONF", "gNMI", "REST API", "Webhooks", "Syslog", "Streaming Telemetry"},
	}
	CollectorAuth = Group{
		ID: "collector.auth", Label: "Collection authentication",
		Prefix: "collector_auth_", CustomKey: "collector_auth_other", EnableKey: "collector_auth_other_enable",
		LeadIn:  "Collection authentication will use ",
		Options: []string{"Username/Password", "SSH Keys", "OAuth2", "API Token", "mTLS"},
	}
	CollectorHandling = Group{
		ID: "collector.handling", Label: "Traffic handling",
		Prefix: "collector_handle_", CustomKey: "collector_handling_other", EnableKey: "collector_handling_other_enable",
		LeadIn:  "Data will be handled using ",
		Options: []string{"None", "Rate limiting", "Retries", "Exponential backoff", "Buffering/Queue"},
	}
	CollectorNormalization = Group{
		ID: "collector.normalization", Label: "Normalization",
		Prefix: "collector_norm_", CustomKey: "collector_norm_other", EnableKey: "collector_norm_other_enable",
		LeadIn:  "Data will be normalized using ",
		Options: []string{"None", "Timestamping", "Tagging/labels", "Topology enrichment", "Schema mapping"},
	}
	CollectorTools = Group{
		ID: "collector.tools", Label: "Collection tools",
		Prefix: "collection_tool_", CustomKey: "collection_tools_other", EnableKey: "collection_tools_other_enable",
		LeadIn:  "Collection tools include ",
		Options: []string{"None", "Open Source Software", "Commercial/Enterprise Product", "In-house Software"},
	}

	ExecutorMethods = Group{
		ID: "executor.methods", Label: "Execution methods",
		Prefix: "exec_", CustomKey: "exec_custom_text", EnableKey: "exec_custom_enable",
		SplitCustom: true,
		Indexed:     true,
		LeadIn:      "Changes will be executed using ",
		Options: []string{
			"Automating CLI interaction with Python automation frameworks (Netmiko, Napalm, Nornir, PyATS)",
			"Using Open Source Software (Ansible, Terraform, etc.)",
			"Using Custom Python scripts",
			"Using Network Vendor Product (Cisco DNA Center, Arista CVP)",
			"Using a Commercial/Enterprise Product",
		},
	}
)

// Groups lists every checkbox group in wizard order.
func Groups() []Group {
	return []Group{
		PresentationUsers,
		PresentationInteractions,
		PresentationTools,
		PresentationAuth,
		IntentDevelopment,
		IntentProvided,
		ObservabilityMethods,
		ObservabilityTools,
		CollectorMethods,
		CollectorAuth,
		CollectorHandling,
		CollectorNormalization,
		CollectorTools,
		ExecutorMethods,
	}
}

// GroupByID finds a group by its dotted ID.
func GroupByID(id string) (Group, bool) {
	for _, g := range Groups() {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// HasCustom reports whether the group offers a free-text override.
func (g Group) HasCustom() bool {
	return g.CustomKey != ""
}

// Contains reports whether option is one of the group's catalog options.
func (g Group) Contains(option string) bool {
	for _, o := range g.Options {
		if o == option {
			return true
		}
	}
	return false
}
