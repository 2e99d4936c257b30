package memorystore

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"time"

	"github.com/contoso/sre-demo-agent/pkg/logstore"
	"github.com/nxadm/tail"
)

// MemoryStore keeps the application log stream in a flat file under a
// temporary directory, which is all the demo needs: Push appends, Query
// replays, Tail follows.
type MemoryStore struct {
	name     string
	location string
}

type Options struct {
	Dir string // Store the log file at this location. Defaults to /var/tmp
}

func New(name string, options Options) (*MemoryStore, error) {
	store := new(MemoryStore)
	store.name = name

	logFileDir := options.Dir

	if logFileDir == "" {
		logFileDir = filepath.Join("/var", "tmp")
	}

	store.location = path.Join(logFileDir, name+".log")

	if err := store.createLogFile(); err != nil {
		return nil, err
	}

	return store, nil
}

func (store *MemoryStore) createLogFile() error {
	logFileDir := filepath.Dir(store.location)

	if err := os.MkdirAll(logFileDir, os.ModePerm); err != nil {
		return fmt.Errorf("error creating log directory for memory store with name %s: %w", store.name, err)
	}

	f, err := os.OpenFile(store.location, os.O_WRONLY|os.O_CREATE, 0666)

	if err != nil {
		return fmt.Errorf("error creating log file for memory store with name %s: %w", store.name, err)
	}

	defer f.Close()

	return nil
}

func (store *MemoryStore) Query(options logstore.QueryOptions, w logstore.Writer, stopCh <-chan struct{}) error {
	f, err := os.Open(store.location)

	if err != nil {
		return fmt.Errorf("error querying memory store with name %s: %w", store.name, err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var written uint32

	for scanner.Scan() {
		select {
		case <-stopCh:
			return nil
		default:
		}

		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := w.Write(line); err != nil {
			return err
		}

		written++

		if options.Limit > 0 && written >= options.Limit {
			return nil
		}
	}

	return scanner.Err()
}

func (store *MemoryStore) Tail(options logstore.TailOptions, w logstore.Writer, stopCh <-chan struct{}) error {
	t, err := tail.TailFile(store.location, tail.Config{Follow: true, Poll: true})

	if err != nil {
		return fmt.Errorf("error streaming memory store with name %s: %w", store.name, err)
	}

	go func(t *tail.Tail) {
		for line := range t.Lines {
			if strings.TrimSpace(line.Text) == "" || line.Err != nil {
				continue
			}

			w.Write(line.Text)
		}
	}(t)

	<-stopCh
	t.Cleanup()
	t.Stop()

	return nil
}

func (store *MemoryStore) Push(line string, ts time.Time) error {
	f, err := os.OpenFile(store.location, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)

	if err != nil {
		return fmt.Errorf("error opening log file for memory store with name %s: %w", store.name, err)
	}

	defer f.Close()

	entry := fmt.Sprintf("%s %s", ts.UTC().Format(time.RFC3339), line)

	if _, err := f.WriteString(entry + "\n"); err != nil {
		return fmt.Errorf("error pushing log to memory store with name %s: %w", store.name, err)
	}

	return nil
}
