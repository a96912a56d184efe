// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chain-keeper/models"
)

// memoryStorage keeps chains and links in maps. When path is set, every
// successful mutation is written through to a JSON snapshot that is loaded
// again on the next start.
type memoryStorage struct {
	path string

	mu     sync.RWMutex
	chains map[string]models.Chain
	links  map[string]models.ChainLink
}

type memorySnapshot struct {
	Chains []models.Chain     `json:"chains"`
	Links  []models.ChainLink `json:"links"`
}

// NewMemoryStorage returns a [Storage] held in memory. An empty path or
// ":memory:" disables persistence.
func NewMemoryStorage(path string) (Storage, error) {
	if path == ":memory:" {
		path = ""
	}

	s := &memoryStorage{
		path:   path,
		chains: make(map[string]models.Chain),
		links:  make(map[string]models.ChainLink),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *memoryStorage) load() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read memory storage file: %w", err)
	}

	var snap memorySnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode memory storage file: %w", err)
	}

	for _, c := range snap.Chains {
		s.chains[c.ID] = c
	}
	for _, l := range snap.Links {
		if _, ok := s.chains[l.ChainID]; ok {
			s.links[l.ID] = l
		}
	}
	return nil
}

// persist must be called with mu held for writing.
func (s *memoryStorage) persist() error {
	if s.path == "" {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create memory storage dir: %w", err)
		}
	}

	snap := memorySnapshot{
		Chains: sortedChains(s.chains),
		Links:  sortedLinks(s.links, func(models.ChainLink) bool { return true }),
	}
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode memory storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write memory storage file: %w", err)
	}
	return nil
}

func (s *memoryStorage) CreateChain(_ context.Context, chain models.Chain) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chains[chain.ID]; ok {
		return chainExists(chain.ID)
	}
	s.chains[chain.ID] = chain

	if err := s.persist(); err != nil {
		delete(s.chains, chain.ID)
		return s.persistError(err)
	}
	return nil
}

func (s *memoryStorage) GetAllChains(_ context.Context) ([]models.Chain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedChains(s.chains), nil
}

func (s *memoryStorage) GetChain(_ context.Context, id string) (models.Chain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.chains[id]
	if !ok {
		return models.Chain{}, chainNotFound(id)
	}
	return c, nil
}

func (s *memoryStorage) DeleteChain(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain, ok := s.chains[id]
	if !ok {
		return chainNotFound(id)
	}

	removed := make(map[string]models.ChainLink)
	for linkID, l := range s.links {
		if l.ChainID == id {
			removed[linkID] = l
			delete(s.links, linkID)
		}
	}
	delete(s.chains, id)

	if err := s.persist(); err != nil {
		s.chains[id] = chain
		for linkID, l := range removed {
			s.links[linkID] = l
		}
		return s.persistError(err)
	}
	return nil
}

func (s *memoryStorage) CreateLink(_ context.Context, link models.ChainLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chains[link.ChainID]; !ok {
		return chainNotFound(link.ChainID)
	}
	if _, ok := s.links[link.ID]; ok {
		return linkExists(link.ID)
	}
	s.links[link.ID] = link

	if err := s.persist(); err != nil {
		delete(s.links, link.ID)
		return s.persistError(err)
	}
	return nil
}

func (s *memoryStorage) GetLinksByChain(_ context.Context, chainID string) ([]models.ChainLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedLinks(s.links, func(l models.ChainLink) bool { return l.ChainID == chainID }), nil
}

func (s *memoryStorage) GetLink(_ context.Context, id string) (models.ChainLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.links[id]
	if !ok {
		return models.ChainLink{}, linkNotFound(id)
	}
	return l, nil
}

func (s *memoryStorage) UpdateLink(_ context.Context, link models.ChainLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.links[link.ID]
	if !ok {
		return linkNotFound(link.ID)
	}

	updated := old
	updated.Name = link.Name
	updated.Description = link.Description
	updated.Password = link.Password
	updated.IV = link.IV
	s.links[link.ID] = updated

	if err := s.persist(); err != nil {
		s.links[link.ID] = old
		return s.persistError(err)
	}
	return nil
}

func (s *memoryStorage) DeleteLink(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.links[id]
	if !ok {
		return linkNotFound(id)
	}
	delete(s.links, id)

	if err := s.persist(); err != nil {
		s.links[id] = old
		return s.persistError(err)
	}
	return nil
}

func (s *memoryStorage) persistError(err error) error {
	return storageQueryError("persist memory storage", err)
}

func sortedChains(m map[string]models.Chain) []models.Chain {
	out := make([]models.Chain, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b models.Chain) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func sortedLinks(m map[string]models.ChainLink, keep func(models.ChainLink) bool) []models.ChainLink {
	out := make([]models.ChainLink, 0)
	for _, l := range m {
		if keep(l) {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, func(a, b models.ChainLink) int { return strings.Compare(a.ID, b.ID) })
	return out
}
