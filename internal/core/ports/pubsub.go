package ports

const AnyTopic = "*"
const UnspecifiedTopic = ""

const (
	// TopicTransactionSent is published once a transaction is accepted by
	// the node.
	TopicTransactionSent = "TRANSACTION_SENT"
	// TopicTransactionFailed is published when a spend fails after the
	// transaction was assembled.
	TopicTransactionFailed = "TRANSACTION_FAILED"
)

type Subscription interface {
	Topic() string
	Id() string
	IsSecured() bool
	NotifyAt() string
}

// Handler is an in-process subscriber.
type Handler func(topic, message string)

// PubSub defines the methods of the event bus notifying the outcome of
// spends to in-process handlers and webhooks.
type PubSub interface {
	// Subscribe adds an in-process handler for the requested topic.
	Subscribe(topic string, handler Handler) (string, error)
	// SubscribeWebhook adds a webhook for the requested topic. If secret is
	// not empty, requests are authenticated with a JWT signed with it.
	SubscribeWebhook(topic, endpoint, secret string) (string, error)
	// Unsubscribe removes some client defined by its id for a topic.
	Unsubscribe(topic, id string) error
	// ListSubscriptionsForTopic returns the info of all clients subscribed for
	// a certain topic.
	ListSubscriptionsForTopic(topic string) []Subscription
	// Publish publishes a message for a certain topic. All clients subscribed
	// for such topic will receive the message.
	Publish(topic string, message string) error
	// Close releases the storage of the webhooks.
	Close() error
}
