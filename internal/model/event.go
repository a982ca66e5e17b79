package model

// Event levels
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories
const (
	EventCategoryAuth   = "auth"
	EventCategoryPost   = "post"
	EventCategorySystem = "system"
	EventCategoryCache  = "cache"
)
