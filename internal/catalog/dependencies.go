package catalog

// Dependency is one external system the solution may rely on.
type Dependency struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	DefaultOn      bool   `json:"default_on"`
	DefaultDetails string `json:"default_details,omitempty"`
	Help           string `json:"help,omitempty"`
}

// Dependencies is the fixed dependency table in display order.
var Dependencies = []Dependency{
	{Key: "network_infra", Label: "Network Infrastructure", DefaultOn: true,
		Help: "Devices the automation reads from or changes."},
	{Key: "network_controllers", Label: "Network Controllers",
		Help: "SDN controllers, wireless controllers, fabric managers."},
	{Key: "revision_control", Label: "Revision Control system", DefaultOn: true, DefaultDetails: "GitHub",
		Help: "Where code, templates and intent data are versioned."},
	{Key: "itsm", Label: "ITSM/Change Management System",
		Help: "Ticketing and change approval, e.g. ServiceNow."},
	{Key: "authn", Label: "Authentication System",
		Help: "AD/LDAP, TACACS+, RADIUS, SSO."},
	{Key: "ipams", Label: "IPAMS Systems",
		Help: "IP address management."},
	{Key: "inventory", Label: "Inventory Systems",
		Help: "CMDB or device inventory."},
	{Key: "design_intent", Label: "Design Data/Intent Systems",
		Help: "Source of truth for intended design."},
	{Key: "observability", Label: "Observability System",
		Help: "Monitoring, telemetry and logging platforms."},
	{Key: "vendor_mgmt", Label: "Vendor Tool/Management System",
		Help: "Vendor controllers and element managers."},
}

// DependencyLabel maps a key to its display label. Unknown keys are
// returned unchanged.
func DependencyLabel(key string) string {
	for _, d := range Dependencies {
		if d.Key == key {
			return d.Label
		}
	}
	return key
}

// DependencyKey maps a display label back to its key. Only exact labels
// from the table match.
func DependencyKey(label string) (string, bool) {
	for _, d := range Dependencies {
		if d.Label == label {
			return d.Key, true
		}
	}
	return "", false
}

// DependencyKeys lists all known keys in display order.
func DependencyKeys() []string {
	out := make([]string, len(Dependencies))
	for i, d := range Dependencies {
		out[i] = d.Key
	}
	return out
}
