package models

// DefaultCategories is the set of shared categories seeded at setup time.
// Seeding is idempotent: existing defaults are matched by name and their
// icon/color refreshed instead of duplicated.
var DefaultCategories = []Category{
	{Name: "Food & Dining", Icon: "🍔", Color: "#EF4444"},
	{Name: "Transportation", Icon: "🚗", Color: "#F59E0B"},
	{Name: "Shopping", Icon: "🛍️", Color: "#10B981"},
	{Name: "Entertainment", Icon: "🎬", Color: "#6366F1"},
	{Name: "Bills & Utilities", Icon: "💡", Color: "#8B5CF6"},
	{Name: "Healthcare", Icon: "🏥", Color: "#EC4899"},
	{Name: "Education", Icon: "📚", Color: "#14B8A6"},
	{Name: "Other", Icon: "📦", Color: "#6B7280"},
}
