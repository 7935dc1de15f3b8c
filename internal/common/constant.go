package common

// Bootstrap administrator created on first use of an empty credential store.
// The seed password must be changed out of band; the store has no update op.
const (
	AdminUserName        = "admin"
	AdminDisplayName     = "sysAdmin"
	DefaultAdminPassword = "admin123"
)

// Drawers are numbered DrawerMin..DrawerMax inclusive.
const (
	DrawerMin = 1
	DrawerMax = 20
)

// TimestampLayout is the free-text creation timestamp format of inventory
// records.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// DisplayTimestampLayout is TimestampLayout without the fractional seconds.
const DisplayTimestampLayout = "2006-01-02 15:04:05"
