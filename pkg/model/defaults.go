package model

const (
	DefaultResolverPath  = "youtube-dl"
	DefaultLogMaxSize    = 50 // megabytes
	DefaultLogMaxAge     = 30 // days
	DefaultLogMaxBackups = 7
	DefaultHookTimeout   = 60 // seconds

	UserAgent  = "Downcast/1.0 (https://d.sb/downcast)"
	FeedAccept = "application/rss+xml, application/atom+xml, application/xml, text/xml, */*"
)
