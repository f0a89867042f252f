package rabbitmq

const (
	FOLLOWS_QUEUE = "follows"
	NEW_POST_NOTIFICATIONS_QUEUE = "notifications.new_post"
)
