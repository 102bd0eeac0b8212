package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/orbitmsg/orbit/internal/client/storage"
	"github.com/orbitmsg/orbit/internal/models"
)

// Снимки хранятся по ключу "<kind>/<id>"; значение — JSON конкретного типа.
var entityKeySep = []byte("/")

func entityKey(kind models.EntityType, id string) []byte {
	return []byte(string(kind) + "/" + id)
}

// SaveEntities stores or replaces entity snapshots by (kind, id)
func (s *Storage) SaveEntities(ctx context.Context, es []models.Entity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntities)
		if bucket == nil {
			return fmt.Errorf("entities bucket not found")
		}

		for _, e := range es {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal entity %s/%s: %w", e.Kind(), e.EntityID(), err)
			}
			if err := bucket.Put(entityKey(e.Kind(), e.EntityID()), data); err != nil {
				return fmt.Errorf("failed to save entity %s/%s: %w", e.Kind(), e.EntityID(), err)
			}
		}

		return nil
	})
}

// LoadEntities returns all stored entity snapshots
func (s *Storage) LoadEntities(ctx context.Context) ([]models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entities []models.Entity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEntities)
		if bucket == nil {
			// Нет bucket - возвращаем пустой набор
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			sep := bytes.Index(k, entityKeySep)
			if sep < 0 {
				// Ключ неизвестного формата пропускаем
				return nil
			}

			entity, err := unmarshalEntity(models.EntityType(k[:sep]), v)
			if err != nil {
				return fmt.Errorf("failed to unmarshal entity %s: %w", k, err)
			}
			if entity != nil {
				entities = append(entities, entity)
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return entities, nil
}

// Clear removes all stored entity snapshots
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketEntities); err != nil {
			return fmt.Errorf("failed to delete entities bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketEntities); err != nil {
			return fmt.Errorf("failed to recreate entities bucket: %w", err)
		}
		return nil
	})
}

// unmarshalEntity декодирует снимок в конкретный тип по его kind.
// Неизвестный kind возвращает (nil, nil): снимок из более новой версии
// клиента молча пропускается.
func unmarshalEntity(kind models.EntityType, data []byte) (models.Entity, error) {
	switch kind {
	case models.EntityTypePost:
		var e models.Post
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return e, nil
	case models.EntityTypeReply:
		var e models.Reply
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return e, nil
	case models.EntityTypeSpaceUser:
		var e models.SpaceUser
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return e, nil
	case models.EntityTypeGroup:
		var e models.Group
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return e, nil
	case models.EntityTypeSpace:
		var e models.Space
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, nil
	}
}
