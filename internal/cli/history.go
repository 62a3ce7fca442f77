package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/reditus/pkg/types"
	"github.com/spf13/cobra"
)

type snapshotJSON struct {
	SnapshotID string    `json:"snapshot_id"`
	Version    int64     `json:"version"`
	Bytes      int       `json:"bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List saved snapshots of the current program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(s *session) error {
				ns := s.persist.Namespace()
				snaps, err := s.store.History(ns)
				if err != nil && !errors.Is(err, types.ErrNotFound) {
					return classify(fmt.Errorf("history of %s: %w", ns, err))
				}

				w := cmd.OutOrStdout()
				if a.flags.jsonMode {
					out := make([]snapshotJSON, len(snaps))
					for i, snap := range snaps {
						out[i] = snapshotJSON{
							SnapshotID: snap.SnapshotID,
							Version:    snap.Version,
							Bytes:      len(snap.Value),
							CreatedAt:  snap.CreatedAt,
						}
					}
					return writeJSON(w, out)
				}

				if len(snaps) == 0 {
					fmt.Fprintf(w, "No snapshots saved for %s\n", ns)
					return nil
				}
				for _, snap := range snaps {
					fmt.Fprintf(w, "v%-4d %s  %s  %d bytes\n", snap.Version, snap.SnapshotID,
						snap.CreatedAt.Local().Format(time.DateTime), len(snap.Value))
				}
				return nil
			})
		},
	}
}
