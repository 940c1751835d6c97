package event

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"log"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/iamasit07/connectfour/internal/domain"
)

// KafkaSink sends game analytics (starts and results) to a topic, keyed by
// game id. Other events are ignored.
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
}

type KafkaAuth struct {
	User     string
	Password string
}

// NewKafkaProducer dials the brokers. SASL/TLS is enabled when auth.User is set.
func NewKafkaProducer(brokers []string, topic string, auth KafkaAuth) (*KafkaSink, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	if auth.User != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.User = auth.User
		config.Net.SASL.Password = auth.Password
		config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		config.Net.TLS.Enable = true
		config.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	p, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return NewKafkaSink(p, topic), nil
}

func NewKafkaSink(producer sarama.SyncProducer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

func (k *KafkaSink) Publish(_ context.Context, msg domain.ServerMessage) error {
	if msg.Type != domain.MsgGameStarted && msg.Type != domain.MsgGameOver {
		return nil
	}

	val, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}

	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(msg.GameID),
		Value: sarama.ByteEncoder(val),
	})
	if err != nil {
		return errors.Wrap(err, "send to kafka")
	}
	log.Printf("[KAFKA] %s sent for game %s", msg.Type, msg.GameID)
	return nil
}

func (k *KafkaSink) Close() error {
	return k.producer.Close()
}
