package model

import "encoding/json"

// DashboardPreferencesVersion is the current preferences blob schema version
const DashboardPreferencesVersion = 1

// DashboardWidget is one widget in a user's dashboard layout
type DashboardWidget struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"` // stat, info, action, chart
	Order   int    `json:"order"`
	Visible bool   `json:"visible"`
	ColSpan int    `json:"col_span"` // 1..4 columns
}

// DashboardPreferences is the per-user widget layout, persisted as a JSON
// blob on the user row
type DashboardPreferences struct {
	Version int               `json:"version"`
	Widgets []DashboardWidget `json:"widgets"`
}

// DefaultDashboardPreferences returns the documented default layout
func DefaultDashboardPreferences() DashboardPreferences {
	return DashboardPreferences{
		Version: DashboardPreferencesVersion,
		Widgets: []DashboardWidget{
			{ID: "total-clients", Title: "Total Clients", Type: "stat", Order: 0, Visible: true, ColSpan: 1},
			{ID: "active-clients", Title: "Active Clients", Type: "stat", Order: 1, Visible: true, ColSpan: 1},
			{ID: "pending-applications", Title: "Pending Applications", Type: "stat", Order: 2, Visible: true, ColSpan: 1},
			{ID: "active-providers", Title: "Active Providers", Type: "stat", Order: 3, Visible: true, ColSpan: 1},
			{ID: "pending-tasks", Title: "Pending Tasks", Type: "stat", Order: 4, Visible: true, ColSpan: 1},
			{ID: "children-placed", Title: "Children Placed", Type: "info", Order: 5, Visible: true, ColSpan: 1},
			{ID: "quick-actions", Title: "Quick Actions", Type: "action", Order: 6, Visible: true, ColSpan: 1},
		},
	}
}

// DecodeDashboardPreferences decodes a stored preferences blob. A missing,
// malformed, or wrong-version blob yields the default layout.
func DecodeDashboardPreferences(raw string) DashboardPreferences {
	if raw == "" {
		return DefaultDashboardPreferences()
	}

	var prefs DashboardPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return DefaultDashboardPreferences()
	}
	if prefs.Version != DashboardPreferencesVersion || len(prefs.Widgets) == 0 {
		return DefaultDashboardPreferences()
	}
	return prefs
}

// EncodeDashboardPreferences serializes preferences for storage
func EncodeDashboardPreferences(prefs DashboardPreferences) (string, error) {
	prefs.Version = DashboardPreferencesVersion
	raw, err := json.Marshal(prefs)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DashboardStats holds the aggregate counts shown on the dashboard
type DashboardStats struct {
	TotalClients        int   `json:"total_clients"`
	ActiveClients       int   `json:"active_clients"`
	PendingApplications int   `json:"pending_applications"`
	ActiveProviders     int   `json:"active_providers"`
	ChildrenPlaced      int   `json:"children_placed"`
	PendingTasks        int64 `json:"pending_tasks"`
}
