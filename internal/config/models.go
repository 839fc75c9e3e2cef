package config

import (
	"fmt"
	"time"
)

type Config struct {
	GracefulDuration time.Duration
	DefaultTimeout   time.Duration
	Metrics          Metrics
	Logs             Logs
	DeadLetterQueue  S3
	History          S3
	Kafka            Kafka
	Valkey           Valkey
	AWS              AWS
	Automation       Automation
	Reconciler       Reconciler
}

type Metrics struct {
	Port int
}

type Logs struct {
	Level   int
	Encoder EncoderType
}

type EncoderType string

const (
	EncoderTypeJson    EncoderType = "json"
	EncoderTypeConsole EncoderType = "console"
)

type S3 struct {
	Bucket       string
	KeyPrefix    string
	BaseEndpoint string
	Region       string
	UsePathStyle bool
	Creds        AWSCreds
}

type AWSCreds struct {
	AccessKeyID     string
	SecretAccessKey string
}

func (c AWSCreds) String() string {
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		return "creds set"
	}

	return "no creds"
}

// AWS configures the main account clients (role assumption, access points).
// Leaving Creds empty falls back to the default credential chain.
type AWS struct {
	Region        string
	BaseEndpoint  string
	MainAccountID string
	Creds         AWSCreds
}

type Kafka struct {
	Broker   KafkaBroker
	Consumer KafkaConsumer
}

type KafkaBroker struct {
	URLs    string
	Version string
	TLS     bool
	Creds   KafkaCreds
}

// KafkaCreds enables SASL when Username is set. Mechanism is one of SCRAM-SHA-256, SCRAM-SHA-512 or PLAIN.
type KafkaCreds struct {
	Username  string
	Password  string
	Mechanism string
}

func (c KafkaCreds) String() string {
	if c.Username != "" && c.Password != "" {
		return fmt.Sprintf("creds set (%s)", c.Mechanism)
	}

	return "no creds"
}

type KafkaConsumer struct {
	Topic string
	Group string
}

type Valkey struct {
	URL string
	// Logical database holding the environment records
	DB         int
	ClientName string
	Creds      ValkeyCreds
}

type ValkeyCreds struct {
	Username string
	Password string
}

func (c ValkeyCreds) String() string {
	if c.Password != "" {
		return "password set"
	}

	return "no password"
}

type Automation struct {
	SessionPrefix    string
	LaunchRunbook    string
	TerminateRunbook string
	Outputs          AutomationOutputs
	Poll             Backoff
}

// AutomationOutputs names the execution outputs holding the provisioned resource identity.
type AutomationOutputs struct {
	InstanceID  string
	InstanceArn string
}

type Backoff struct {
	MaxAttempt uint
	Delay      time.Duration
	MaxDelay   time.Duration
}

type Reconciler struct {
	Retry         Backoff
	Conflict      Backoff
	LateThreshold time.Duration
}
