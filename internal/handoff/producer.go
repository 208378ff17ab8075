package handoff

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/foodyatra/foodyatra/internal/models"
)

// Channel is the outbound messaging destination order confirmations go
// through.
type Channel interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// Sender publishes order confirmation messages to a channel topic.
type Sender struct {
	channel Channel
	topic   string
}

func NewSender(channel Channel, topic string) *Sender {
	return &Sender{channel: channel, topic: topic}
}

func (s *Sender) Send(o models.Order) error {
	if err := s.channel.WriteMessage(s.topic, []byte(Message(o))); err != nil {
		return fmt.Errorf("failed to hand off order %s: %w", o.ID, err)
	}
	return nil
}

type SaramaChannel struct {
	producer sarama.SyncProducer
}

func NewSaramaChannel(config *models.Config) (*SaramaChannel, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(config.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokerList)
	return &SaramaChannel{producer: producer}, nil
}

func (s *SaramaChannel) WriteMessage(topic string, msg []byte) error {
	if s.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	_, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", topic, err)
		return err
	}

	return nil
}

func (s *SaramaChannel) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}

// ConsoleChannel prints handoff messages to the log, used when Kafka
// output is disabled.
type ConsoleChannel struct{}

func (c *ConsoleChannel) WriteMessage(topic string, msg []byte) error {
	log.Printf("[%s]\n%s", topic, msg)
	return nil
}

func (c *ConsoleChannel) Close() error {
	return nil
}
