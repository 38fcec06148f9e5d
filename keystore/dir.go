// Copyright (C) 2018  MediBloc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>

package keystore

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
)

// Dir indexes the keystore files of a directory by address.
type Dir struct {
	keydir  string
	mu      sync.RWMutex
	byAddr  map[common.Address]string
	byPath  map[string]common.Address
	fc      *fileCache
	watcher *watcher
}

// NewDir creates keydir if needed and scans it.
func NewDir(keydir string) (*Dir, error) {
	if err := os.MkdirAll(keydir, 0700); err != nil {
		return nil, err
	}
	d := &Dir{
		keydir: keydir,
		byAddr: make(map[common.Address]string),
		byPath: make(map[string]common.Address),
		fc:     newFileCache(),
	}
	d.watcher = newWatcher(d)
	if err := d.scanAccounts(); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.keydir
}

func (d *Dir) scanAccounts() error {
	creates, deletes, updates, err := d.fc.scan(d.keydir)
	if err != nil {
		return err
	}
	if creates.IsEmpty() && deletes.IsEmpty() && updates.IsEmpty() {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range deletes.List() {
		d.remove(p.(string))
	}
	for _, p := range append(creates.List(), updates.List()...) {
		path := p.(string)
		d.remove(path)
		ks, err := readKeystore(path)
		if err != nil {
			logging.WithFields(logrus.Fields{
				"path": path,
				"err":  err,
			}).Debug("Skipped non-keystore file.")
			continue
		}
		addr := normalize(ks.Address)
		d.byAddr[addr] = path
		d.byPath[path] = addr
	}
	logging.WithFields(logrus.Fields{
		"path":     d.keydir,
		"accounts": len(d.byAddr),
	}).Debug("Scanned keystore folder.")
	return nil
}

func (d *Dir) remove(path string) {
	addr, ok := d.byPath[path]
	if !ok {
		return
	}
	delete(d.byPath, path)
	if d.byAddr[addr] == path {
		delete(d.byAddr, addr)
	}
}

// normalize lowercases addr; the index is case-insensitive.
func normalize(addr common.Address) common.Address {
	return common.Address(strings.ToLower(string(addr)))
}

func readKeystore(path string) (*Keystore, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Refresh rescans the directory.
func (d *Dir) Refresh() error {
	return d.scanAccounts()
}

// Accounts returns indexed addresses in sorted order.
func (d *Dir) Accounts() []common.Address {
	d.mu.RLock()
	addrs := make([]common.Address, 0, len(d.byAddr))
	for addr := range d.byAddr {
		addrs = append(addrs, addr)
	}
	d.mu.RUnlock()
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// HasAddress reports whether a keystore file for addr is indexed.
func (d *Dir) HasAddress(addr common.Address) bool {
	_, err := d.Find(addr)
	return err == nil
}

// Find returns the file path of the keystore for addr.
func (d *Dir) Find(addr common.Address) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	path, ok := d.byAddr[normalize(addr)]
	if !ok {
		return "", ErrNoMatch
	}
	return path, nil
}

// Load reads the keystore of addr.
func (d *Dir) Load(addr common.Address) (*Keystore, error) {
	path, err := d.Find(addr)
	if err != nil {
		return nil, err
	}
	return readKeystore(path)
}

// Store writes ks into the directory and returns its path.
func (d *Dir) Store(ks *Keystore) (string, error) {
	data, err := ks.JSON()
	if err != nil {
		return "", err
	}
	path := filepath.Join(d.keydir, keyFileName(ks.Address, time.Now()))
	if err := WriteFile(path, data); err != nil {
		return "", err
	}

	d.mu.Lock()
	d.remove(path)
	addr := normalize(ks.Address)
	d.byAddr[addr] = path
	d.byPath[path] = addr
	d.mu.Unlock()
	return path, nil
}

// Watch starts rescanning the directory on file system events.
func (d *Dir) Watch() {
	d.mu.Lock()
	d.watcher.start()
	d.mu.Unlock()
}

// Watching reports whether the watcher is running.
func (d *Dir) Watching() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.watcher.running
}

// Close stops the watcher. Watch may be called again afterwards.
func (d *Dir) Close() {
	d.mu.Lock()
	if d.watcher.starting || d.watcher.running {
		d.watcher.close()
		d.watcher = newWatcher(d)
	}
	d.mu.Unlock()
}

// WriteFile writes a keystore file with owner only permissions through a temporary file.
func WriteFile(path string, data []byte) error {
	if err := common.EnsureDir(path, 0700); err != nil {
		return err
	}
	f, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Chmod(0600); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}

// keyFileName returns the file name of a keystore, UTC--<created_at UTC ISO8601>--<address>.
func keyFileName(addr common.Address, t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("UTC--%s--%s", t.Format("2006-01-02T15-04-05.000000000Z"), addr)
}
