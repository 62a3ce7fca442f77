package cli

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/reditus/internal/program"
	"github.com/mesh-intelligence/reditus/pkg/store"
	"github.com/mesh-intelligence/reditus/pkg/types"
	"github.com/spf13/cobra"
)

// session is an attached store with the tracker for the configured program.
type session struct {
	store   types.Store
	persist *program.Persistence
	tracker *program.Tracker
	anchor  time.Time
}

// openSession attaches the configured store and loads the program state.
// The caller must call close.
func (a *app) openSession(cmd *cobra.Command) (*session, error) {
	anchor, err := program.AnchorFor(a.config, time.Local, a.now())
	if err != nil {
		return nil, userError(err)
	}

	st, err := store.Open(a.config)
	if err != nil {
		return nil, classify(err)
	}

	ns := program.Namespace(anchor.Year(), a.config.GetNamespaceSuffix())
	persist := program.NewPersistence(st, ns, a.logger(cmd.ErrOrStderr()), a.now)
	return &session{
		store:   st,
		persist: persist,
		tracker: program.Open(persist, program.DefaultState(anchor)),
		anchor:  anchor,
	}, nil
}

func (s *session) close() error {
	if err := s.store.Detach(); err != nil {
		return sysError(fmt.Errorf("detach store: %w", err))
	}
	return nil
}

// withSession runs fn against an open session and detaches afterwards.
func (a *app) withSession(cmd *cobra.Command, fn func(*session) error) error {
	s, err := a.openSession(cmd)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		_ = s.close()
		return err
	}
	return s.close()
}
