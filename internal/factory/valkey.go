package factory

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/log"
)

// CreateValkeyClient connects to the record store and fails fast when it cannot be reached.
func CreateValkeyClient(ctx context.Context, conf config.Valkey) (valkey.Client, common.CloseFunc, error) {
	ret, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{conf.URL},
		Username:    conf.Creds.Username,
		Password:    conf.Creds.Password,
		SelectDB:    conf.DB,
		ClientName:  conf.ClientName,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create valkey client for %s: %w", conf.URL, err)
	}

	ping := ret.B().Ping().Build()

	err = ret.Do(ctx, ping).Error()
	if err != nil {
		ret.Close()

		return nil, nil, fmt.Errorf("failed to ping valkey at %s: %w", conf.URL, err)
	}

	log.Logger().V(1).Info("Record store reachable", "url", conf.URL, "db", conf.DB, "creds", conf.Creds)

	shutdown := func(context.Context) error {
		ret.Close()

		return nil
	}

	return ret, shutdown, nil
}
