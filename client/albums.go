package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"server/models"
)

// AlbumService holds the authoritative local copy of the album collection.
// Every mutation calls the API first and patches the cache only from the
// server's response; on failure the cache stays as it was and the error is
// handed back to the caller.
type AlbumService struct {
	client *Client
	mu     sync.RWMutex
	albums []models.Album
}

func NewAlbumService(c *Client) *AlbumService {
	return &AlbumService{client: c, albums: []models.Album{}}
}

type AlbumParams struct {
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Installations []InstallationParams `json:"installations,omitempty"`
}

type AlbumUpdateParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type InstallationParams struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

type InstallationUpdateParams struct {
	Image       *string `json:"image,omitempty"`
	Title       *string `json:"title,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// Refresh refetches the whole collection (the "on mount" fetch).
func (s *AlbumService) Refresh(ctx context.Context) error {
	albums := []models.Album{}
	if err := s.client.do(ctx, http.MethodGet, "/api/albums", nil, &albums); err != nil {
		return err
	}
	s.mu.Lock()
	s.albums = albums
	s.mu.Unlock()
	return nil
}

// Albums returns a copy of the cached collection, newest first. The
// installations are copied too, so the snapshot stays stable while the
// cache keeps changing.
func (s *AlbumService) Albums() []models.Album {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Album, len(s.albums))
	for i, album := range s.albums {
		installations := make([]models.Installation, len(album.Installations))
		copy(installations, album.Installations)
		album.Installations = installations
		out[i] = album
	}
	return out
}

// Get fetches one album directly from the API (public endpoint, bypasses
// the cache).
func (s *AlbumService) Get(ctx context.Context, id uint64) (models.Album, error) {
	album := models.Album{}
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/albums/%d", id), nil, &album)
	return album, err
}

func (s *AlbumService) Create(ctx context.Context, params AlbumParams) (models.Album, error) {
	album := models.Album{}
	if err := s.client.do(ctx, http.MethodPost, "/api/albums", params, &album); err != nil {
		return models.Album{}, err
	}
	s.mu.Lock()
	s.albums = append([]models.Album{album}, s.albums...)
	s.mu.Unlock()
	return album, nil
}

func (s *AlbumService) Update(ctx context.Context, id uint64, params AlbumUpdateParams) (models.Album, error) {
	album := models.Album{}
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/albums/%d", id), params, &album); err != nil {
		return models.Album{}, err
	}
	s.mu.Lock()
	for i := range s.albums {
		if s.albums[i].ID == id {
			s.albums[i] = album
			break
		}
	}
	s.mu.Unlock()
	return album, nil
}

func (s *AlbumService) Delete(ctx context.Context, id uint64) error {
	if err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/albums/%d", id), nil, nil); err != nil {
		return err
	}
	s.mu.Lock()
	kept := make([]models.Album, 0, len(s.albums))
	for _, album := range s.albums {
		if album.ID != id {
			kept = append(kept, album)
		}
	}
	s.albums = kept
	s.mu.Unlock()
	return nil
}

func (s *AlbumService) AddInstallation(ctx context.Context, albumID uint64, params InstallationParams) (models.Installation, error) {
	installation := models.Installation{}
	path := fmt.Sprintf("/api/albums/%d/installations", albumID)
	if err := s.client.do(ctx, http.MethodPost, path, params, &installation); err != nil {
		return models.Installation{}, err
	}
	s.mu.Lock()
	for i := range s.albums {
		if s.albums[i].ID == albumID {
			s.albums[i].Installations = append(s.albums[i].Installations, installation)
			break
		}
	}
	s.mu.Unlock()
	return installation, nil
}

func (s *AlbumService) UpdateInstallation(ctx context.Context, albumID uint64, installationID string, params InstallationUpdateParams) (models.Installation, error) {
	installation := models.Installation{}
	path := fmt.Sprintf("/api/albums/%d/installations/%s", albumID, installationID)
	if err := s.client.do(ctx, http.MethodPut, path, params, &installation); err != nil {
		return models.Installation{}, err
	}
	s.mu.Lock()
	for i := range s.albums {
		if s.albums[i].ID != albumID {
			continue
		}
		// Reassign a fresh slice rather than writing through the old one:
		// earlier Albums() snapshots must not change under their callers.
		updated := make([]models.Installation, len(s.albums[i].Installations))
		for j, existing := range s.albums[i].Installations {
			if existing.ID == installationID {
				existing = installation
			}
			updated[j] = existing
		}
		s.albums[i].Installations = updated
		break
	}
	s.mu.Unlock()
	return installation, nil
}

func (s *AlbumService) DeleteInstallation(ctx context.Context, albumID uint64, installationID string) error {
	path := fmt.Sprintf("/api/albums/%d/installations/%s", albumID, installationID)
	if err := s.client.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.albums {
		if s.albums[i].ID != albumID {
			continue
		}
		kept := make([]models.Installation, 0, len(s.albums[i].Installations))
		for _, installation := range s.albums[i].Installations {
			if installation.ID != installationID {
				kept = append(kept, installation)
			}
		}
		s.albums[i].Installations = kept
		break
	}
	s.mu.Unlock()
	return nil
}
