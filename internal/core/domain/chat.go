package domain

// ChatScope controls which pages the live-chat widget is injected on.
type ChatScope string

const (
	ScopeAll              ChatScope = "all"
	ScopeHomepage         ChatScope = "homepage"
	ScopeDashboard        ChatScope = "dashboard"
	ScopeExcludeDashboard ChatScope = "exclude_dashboard"
)

// ChatWidgetConfig is the admin-managed feature flag for the third-party
// live-chat widget. Script is the injected snippet verbatim; its content
// is owned by the chat vendor.
type ChatWidgetConfig struct {
	Enabled      bool      `json:"enabled"`
	Script       string    `json:"script"`
	Scope        ChatScope `json:"scope"`
	AutoReply    string    `json:"auto_reply"`
	SupportEmail string    `json:"support_email"`
}

// ValidChatScope reports whether scope is a known display scope.
func ValidChatScope(scope ChatScope) bool {
	switch scope {
	case ScopeAll, ScopeHomepage, ScopeDashboard, ScopeExcludeDashboard:
		return true
	}
	return false
}
