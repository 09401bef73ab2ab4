package exec

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/dreamware/coredb/internal/dberr"
	"github.com/dreamware/coredb/internal/key"
	"github.com/dreamware/coredb/internal/registry"
	"github.com/dreamware/coredb/internal/schema"
)

// Mode is a SaveExecutor's write mode (spec.md §4.3).
type Mode uint8

const (
	_ Mode = iota
	ModeCreate
	ModeUpdate
	ModeReplace
)

// SaveExecutor implements Create/Update/Replace with full index
// maintenance (spec.md §4.3 SaveExecutor).
type SaveExecutor struct {
	base
	clock Clock
	log   *zap.Logger
}

// NewSaveExecutor builds a SaveExecutor. A nil clock defaults to
// SystemClock; a nil logger defaults to zap.NewNop().
func NewSaveExecutor(schemaReg *schema.Registry, stores *registry.StoreRegistry, clock Clock, log *zap.Logger) *SaveExecutor {
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SaveExecutor{base: base{schemaReg: schemaReg, stores: stores}, clock: clock, log: log}
}

// Save runs the full save pipeline for one entity under path, per
// spec.md §4.3's numbered SaveExecutor steps.
func (s *SaveExecutor) Save(path string, e schema.Entity, mode Mode) (Result, error) {
	def, err := s.resolveEntity(path)
	if err != nil {
		return Result{}, err
	}

	if def.Validate != nil {
		if err := def.Validate(e); err != nil {
			if _, ok := err.(*dberr.Error); ok {
				return Result{}, err
			}
			return Result{}, dberr.Wrap(dberr.KindValidation, path, err)
		}
	}

	codec, err := s.schemaReg.Codec(path)
	if err != nil {
		return Result{}, err
	}
	newBytes, err := codec.Encode(e)
	if err != nil {
		return Result{}, dberr.Wrap(dberr.KindSerdeFailure, path, err)
	}

	dataStore, err := s.dataStoreFor(def)
	if err != nil {
		return Result{}, err
	}

	dk := schema.BuildDataKey(def, e)

	oldRaw, getErr := dataStore.Get(dk)
	existed := getErr == nil
	if getErr != nil && !dberr.Is(getErr, dberr.KindKeyNotFound) {
		return Result{}, getErr
	}

	var oldEnv envelope
	var oldEntity schema.Entity
	if existed {
		oldEnv, err = decodeEnvelope(oldRaw)
		if err != nil {
			return Result{}, dberr.Wrap(dberr.KindSerdeFailure, dk.String(), err)
		}
		oldEntity, err = codec.Decode(path, oldEnv.Bytes)
		if err != nil {
			return Result{}, dberr.Wrap(dberr.KindSerdeFailure, dk.String(), err)
		}
	}

	now := s.clock.NowMs()
	var created, modified uint64

	switch mode {
	case ModeCreate:
		if existed {
			return Result{}, dberr.New(dberr.KindKeyExists, dk.String())
		}
		created, modified = now, now
	case ModeUpdate:
		if !existed {
			return Result{}, dberr.New(dberr.KindKeyNotFound, dk.String())
		}
		created = oldEnv.CreatedMs
		modified = oldEnv.ModifiedMs
		if !bytes.Equal(newBytes, oldEnv.Bytes) {
			modified = now
		}
	case ModeReplace:
		if !existed {
			created, modified = now, now
		} else {
			created = oldEnv.CreatedMs
			modified = oldEnv.ModifiedMs
			if !bytes.Equal(newBytes, oldEnv.Bytes) {
				modified = now
			}
		}
	default:
		return Result{}, dberr.New(dberr.KindShapeNotSupported, "unknown save mode")
	}

	if err := s.diffIndexes(def, dk, oldEntity, e, existed); err != nil {
		return Result{}, err
	}

	dataStore.Put(dk, encodeEnvelope(envelope{CreatedMs: created, ModifiedMs: modified, Bytes: newBytes}))

	s.log.Debug("entity saved",
		zap.String("path", path),
		zap.String("key", dk.String()),
		zap.Bool("existed", existed))

	return Result{Key: dk, CreatedMs: created, ModifiedMs: modified}, nil
}

// Patch applies view to the row at dk in place (spec.md §9 "Update
// semantics"): fields view doesn't mention keep the stored row's value, so
// callers don't have to round-trip the whole entity to change one field.
// The target entity's Go type must implement schema.PatchableEntity; if it
// doesn't, Patch fails with KindShapeNotSupported rather than silently
// falling back to a whole-entity replace. A missing row is KindKeyNotFound,
// matching plain ModeUpdate.
func (s *SaveExecutor) Patch(path string, dk key.DataKey, view schema.UpdateView) (Result, error) {
	def, err := s.resolveEntity(path)
	if err != nil {
		return Result{}, err
	}
	codec, err := s.schemaReg.Codec(path)
	if err != nil {
		return Result{}, err
	}
	dataStore, err := s.dataStoreFor(def)
	if err != nil {
		return Result{}, err
	}

	oldRaw, err := dataStore.Get(dk)
	if err != nil {
		return Result{}, err
	}
	oldEnv, err := decodeEnvelope(oldRaw)
	if err != nil {
		return Result{}, dberr.Wrap(dberr.KindSerdeFailure, dk.String(), err)
	}
	oldEntity, err := codec.Decode(path, oldEnv.Bytes)
	if err != nil {
		return Result{}, dberr.Wrap(dberr.KindSerdeFailure, dk.String(), err)
	}

	patchable, ok := oldEntity.(schema.PatchableEntity)
	if !ok {
		return Result{}, dberr.New(dberr.KindShapeNotSupported, path+": entity does not implement PatchableEntity")
	}
	newEntity, err := patchable.ApplyUpdateView(view)
	if err != nil {
		return Result{}, dberr.Wrap(dberr.KindValidation, path, err)
	}

	return s.Save(path, newEntity, ModeUpdate)
}

// diffIndexes implements spec.md §4.3 step 4: for each declared index,
// compute old/new index keys and apply the delta, rolling back everything
// already applied in this call if a later index hits a unique violation.
func (s *SaveExecutor) diffIndexes(def *schema.EntityDef, dk key.DataKey, oldEntity, newEntity schema.Entity, hadOld bool) error {
	type undo func()
	var undos []undo

	rollback := func() {
		for i := len(undos) - 1; i >= 0; i-- {
			undos[i]()
		}
	}

	for _, idx := range def.Indexes {
		idxStore, err := s.indexStoreFor(idx)
		if err != nil {
			rollback()
			return err
		}

		var oldKey key.IndexKey
		haveOldKey := false
		if hadOld {
			k, err := schema.BuildIndexKey(def, idx, oldEntity)
			if err == nil {
				oldKey = k
				haveOldKey = true
			}
		}

		newKey, err := schema.BuildIndexKey(def, idx, newEntity)
		haveNewKey := err == nil

		if haveOldKey && haveNewKey && key.CmpIndexKey(oldKey, newKey) == 0 {
			continue // unchanged, nothing to diff
		}

		if haveOldKey {
			idxStore.Remove(oldKey, dk)
			capturedIdx, capturedKey := idxStore, oldKey
			undos = append(undos, func() { _ = capturedIdx.Insert(capturedKey, dk) })
		}
		if haveNewKey {
			if err := idxStore.Insert(newKey, dk); err != nil {
				rollback()
				return err
			}
			capturedIdx, capturedKey := idxStore, newKey
			undos = append(undos, func() { capturedIdx.Remove(capturedKey, dk) })
		}
	}
	return nil
}
