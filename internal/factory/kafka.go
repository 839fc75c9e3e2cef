package factory

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/IBM/sarama"

	"github.com/research-workspaces/env-lifecycle/internal/config"
)

func CreateKafkaConsumer(kafkaConfig config.Kafka) (sarama.ConsumerGroup, error) {
	conf, err := createKafkaConfig(kafkaConfig)
	if err != nil {
		return nil, err
	}

	// Kafka URLs
	urls := strings.Split(kafkaConfig.Broker.URLs, ",")

	// kafka consumer group
	ret, err := sarama.NewConsumerGroup(urls, kafkaConfig.Consumer.Group, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer group: %w", err)
	}

	return ret, nil
}

func createKafkaConfig(kafkaConfig config.Kafka) (*sarama.Config, error) {
	conf := sarama.NewConfig()

	// mandatory configuration
	conf.Consumer.Offsets.AutoCommit.Enable = true
	conf.Consumer.Return.Errors = true

	// initial offset
	conf.Consumer.Offsets.Initial = sarama.OffsetOldest

	// clientID
	conf.ClientID = computeClientID(kafkaConfig.Consumer.Group)

	// kafka version
	version, err := sarama.ParseKafkaVersion(kafkaConfig.Broker.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kafka version: %w", err)
	}

	conf.Version = version

	// authentication
	conf.Net.TLS.Enable = kafkaConfig.Broker.TLS

	err = configureSASL(conf, kafkaConfig.Broker.Creds)
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func configureSASL(conf *sarama.Config, creds config.KafkaCreds) error {
	if creds.Username == "" {
		return nil
	}

	conf.Net.SASL.Enable = true
	conf.Net.SASL.Handshake = true
	conf.Net.SASL.User = creds.Username
	conf.Net.SASL.Password = creds.Password

	switch sarama.SASLMechanism(creds.Mechanism) {
	case sarama.SASLTypeSCRAMSHA256:
		conf.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		conf.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &scramClient{HashGeneratorFcn: scramSHA256}
		}
	case sarama.SASLTypeSCRAMSHA512:
		conf.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
		conf.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &scramClient{HashGeneratorFcn: scramSHA512}
		}
	case sarama.SASLTypePlaintext:
		conf.Net.SASL.Mechanism = sarama.SASLTypePlaintext
	default:
		return fmt.Errorf("unsupported sasl mechanism %q", creds.Mechanism)
	}

	return nil
}

func computeClientID(groupID string) string {
	prefix, err := os.Hostname()
	if err != nil {
		prefix = fmt.Sprintf("clientid-%v", groupID)
	}

	return fmt.Sprintf("%s-%x", prefix, rand.Int31())
}
