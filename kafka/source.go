// Package kafka provides a redk.Source consuming JSON transaction documents
// from Kafka topics.
package kafka

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"sync/atomic"

	"github.com/Shopify/sarama"
	cluster "github.com/bsm/sarama-cluster"
	jsonsrc "github.com/estatemap/redk/json"
	"github.com/pkg/errors"
)

// Source implements the redk.Source interface using kafka as a data source.
type Source struct {
	Hosts   []string
	Topics  []string
	Group   string
	MaxMsgs int
	numMsgs int64

	consumer *cluster.Consumer
}

// NewSource gets a new Source.
func NewSource() *Source {
	return &Source{
		Hosts:  []string{"localhost:9092"},
		Topics: []string{"transactions"},
		Group:  "redk0",
	}
}

// Record returns the next kafka message's value unmarshaled as a document.
// When MaxMsgs is positive the source reports io.EOF after that many
// messages, which is how a kafka run ever finishes.
func (s *Source) Record() (interface{}, error) {
	if s.MaxMsgs > 0 && atomic.AddInt64(&s.numMsgs, 1) > int64(s.MaxMsgs) {
		return nil, io.EOF
	}
	msg, ok := <-s.consumer.Messages()
	if !ok {
		return nil, errors.New("messages channel closed")
	}
	parsed := make(map[string]interface{})
	if err := json.Unmarshal(msg.Value, &parsed); err != nil {
		return nil, errors.Wrap(err, "unmarshaling json")
	}
	jsonsrc.SplatPosition(parsed)
	s.consumer.MarkOffset(msg, "") // mark message as processed
	return parsed, nil
}

// Open initializes the kafka source.
func (s *Source) Open() error {
	sarama.Logger = log.New(ioutil.Discard, "", 0)
	config := cluster.NewConfig()
	config.Config.Version = sarama.V0_10_0_0
	config.Consumer.Return.Errors = true
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Group.Return.Notifications = true

	var err error
	s.consumer, err = cluster.NewConsumer(s.Hosts, s.Group, s.Topics, config)
	if err != nil {
		return errors.Wrap(err, "getting new consumer")
	}

	go func() {
		for err := range s.consumer.Errors() {
			log.Printf("Error: %s\n", err.Error())
		}
	}()
	go func() {
		for ntf := range s.consumer.Notifications() {
			log.Printf("Rebalanced: %+v\n", ntf)
		}
	}()
	return nil
}

// Close closes the underlying kafka consumer.
func (s *Source) Close() error {
	err := s.consumer.Close()
	return errors.Wrap(err, "closing kafka consumer")
}
