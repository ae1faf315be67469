package settings

// Entry is one row of the settings menu and the id of its sub-page.
type Entry struct {
	ID    string
	Title string
	Icon  string
}

// Entries lists the settings menu in display order.
var Entries = []Entry{
	{ID: "profile", Title: "Profile", Icon: "👤"},
	{ID: "account", Title: "Account", Icon: "🔐"},
	{ID: "notifications", Title: "Notifications", Icon: "🔔"},
	{ID: "language", Title: "Language", Icon: "🌐"},
	{ID: "feedSize", Title: "Feed Size", Icon: "📊"},
	{ID: "startTime", Title: "Start Time", Icon: "⏰"},
	{ID: "endTime", Title: "End Time", Icon: "⏱"},
	{ID: "categories", Title: "Categories", Icon: "📁"},
	{ID: "content", Title: "Content Preferences", Icon: "📰"},
	{ID: "reading", Title: "Reading Settings", Icon: "📖"},
	{ID: "appearance", Title: "Appearance", Icon: "🎨"},
	{ID: "privacy", Title: "Privacy", Icon: "🔒"},
	{ID: "security", Title: "Security", Icon: "🛡"},
	{ID: "dataUsage", Title: "Data Usage", Icon: "📶"},
	{ID: "sharing", Title: "Sharing", Icon: "🔗"},
	{ID: "storage", Title: "Storage", Icon: "💾"},
	{ID: "backup", Title: "Backup & Sync", Icon: "☁"},
	{ID: "advanced", Title: "Advanced", Icon: "⚙"},
	{ID: "help", Title: "Help & Support", Icon: "❓"},
	{ID: "feedback", Title: "Send Feedback", Icon: "💬"},
	{ID: "about", Title: "About", Icon: "ℹ"},
	{ID: "legal", Title: "Legal", Icon: "📜"},
	{ID: "version", Title: "Version Info", Icon: "🔢"},
	{ID: "debug", Title: "Debug", Icon: "🐛"},
}

// TitleOf returns the title of the entry with id, or "".
func TitleOf(id string) string {
	for _, e := range Entries {
		if e.ID == id {
			return e.Title
		}
	}
	return ""
}
