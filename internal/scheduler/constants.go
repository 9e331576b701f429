package scheduler

// Log messages
const (
	LogMsgJobScheduled  = "Scheduled periodic job"
	LogMsgEnqueueFailed = "Failed to enqueue scheduled job"
)
