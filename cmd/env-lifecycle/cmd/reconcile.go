package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/history"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/processingerror"
	"github.com/research-workspaces/env-lifecycle/internal/factory"
	"github.com/research-workspaces/env-lifecycle/internal/log"
	"github.com/research-workspaces/env-lifecycle/internal/reconciler"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

// reconcileCmd represents the reconcile command
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Consume lifecycle events and reconcile environment records",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Logger()

		// Set max procs based on cpu limits
		err := common.SetMaxProcs()
		if err != nil {
			return err
		}

		// Set max memory
		err = common.SetMemLimit()
		if err != nil {
			return err
		}

		// Listen to sigterm and interrupt signals
		ctx := common.SetupSignalHandler(context.Background())

		err = reconcile(ctx)
		if err != nil {
			logger.Error(err, "Reconciliation stopped")

			return err
		}

		logger.V(2).Info("Reconciliation stopped")

		return nil
	},
}

func reconcile(ctx context.Context) error {
	logger := log.Logger()
	clock := clockwork.NewRealClock()

	registry, err := factory.CreateRegistry()
	if err != nil {
		return fmt.Errorf("failed to create metrics registry: %w", err)
	}

	// Stores
	s, closeStores, err := createStores(ctx, clock)
	if err != nil {
		return err
	}

	defer shutdown(closeStores, "valkey")

	// Providers
	awsConfig, err := factory.CreateAWSConfig(ctx, conf.AWS)
	if err != nil {
		return err
	}

	p := createProviders(awsConfig, clock)

	transitions, err := createTransitionWriter(ctx)
	if err != nil {
		return err
	}

	// Create pipeline
	r, err := reconciler.NewReconciler(reconciler.Dependencies{
		Environments: s.environments,
		Lookup:       s.lookup,
		Projects:     s.projects,
		Accessor:     p.accessor,
		Outputs:      p.automation,
		History:      transitions,
	}, conf.Reconciler, conf.Automation.SessionPrefix, registry, pipeline.MetricsConfig{Namespace: "reconciler"})
	if err != nil {
		return fmt.Errorf("failed to create reconciler: %w", err)
	}

	processing, err := factory.DecorateProcessing(r, conf.Reconciler, registry, clock)
	if err != nil {
		return fmt.Errorf("failed to decorate processing: %w", err)
	}

	dlqClient, err := factory.CreateS3Client(ctx, conf.DeadLetterQueue)
	if err != nil {
		return err
	}

	deadLetter := reconciler.NewDeadLetter(processingerror.NewS3Writer(dlqClient, clock, conf.DeadLetterQueue.Bucket, conf.DeadLetterQueue.KeyPrefix))

	errorProcessing, err := factory.DecorateErrorProcessing(deadLetter, conf.Reconciler, registry, clock)
	if err != nil {
		return fmt.Errorf("failed to decorate error processing: %w", err)
	}

	consumer, err := factory.CreateKafkaConsumer(conf.Kafka)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner[entity.LifecycleEvent](consumer, []string{conf.Kafka.Consumer.Topic}, processing, errorProcessing).
		WithLogger(logger.WithName("pipeline"))

	server := factory.CreatePrometheusServer(conf.Metrics, registry)

	// Start pipeline
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.V(1).Info("Starting metrics server", "addr", server.Addr)

		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	})

	group.Go(func() error {
		err := runner.Start(groupCtx)
		if errors.Is(err, context.Canceled) {
			err = nil
		}

		return errors.Join(err, consumer.Close())
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.GracefulDuration)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// Transitions always reach the logs, and S3 when a history bucket is configured.
func createTransitionWriter(ctx context.Context) (repo.TransitionWriter, error) {
	logWriter := history.NewLogWriter(log.Logger().WithName("history"))

	if conf.History.Bucket == "" {
		return logWriter, nil
	}

	client, err := factory.CreateS3Client(ctx, conf.History)
	if err != nil {
		return nil, err
	}

	return history.NewParallelWriter(logWriter, history.NewS3Writer(client, conf.History.Bucket, conf.History.KeyPrefix)), nil
}

func shutdown(closeFunc common.CloseFunc, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.GracefulDuration)
	defer cancel()

	err := closeFunc(ctx)
	if err != nil {
		log.Logger().Error(err, "Failed to close "+name)
	}
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
