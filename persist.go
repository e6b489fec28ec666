package tablevec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/hupe1980/tablevec/blobstore"
	"github.com/hupe1980/tablevec/codec"
	"github.com/hupe1980/tablevec/encoder"
	"github.com/hupe1980/tablevec/inspect"
)

// Snapshot layout: a fixed header followed by a codec-encoded payload.
// The header records the codec by name so a snapshot written with a
// compressed codec can be opened without knowing the writer's options.
//
//	[magic "TVSN"][version u8][codec name len u8][codec name][payload]
var snapshotMagic = [4]byte{'T', 'V', 'S', 'N'}

const snapshotVersion = 1

// bindingSnapshot is the serialized form of one fitted binding. Exactly
// one of Directive and EncoderType is set. Encoder state is kept as raw
// JSON inside the payload so the outer codec choice cannot affect how
// nested state is decoded.
type bindingSnapshot struct {
	Group        string                `json:"group"`
	Directive    Directive             `json:"directive,omitempty"`
	EncoderType  string                `json:"encoder_type,omitempty"`
	EncoderState json.RawMessage       `json:"encoder_state,omitempty"`
	Columns      []string              `json:"columns"`
	SkipImpute   bool                  `json:"skip_impute"`
	Fills        map[string]imputation `json:"fills,omitempty"`
	FeatureNames []string              `json:"feature_names"`
}

type snapshot struct {
	Threshold    int               `json:"cardinality_threshold"`
	AutoCast     bool              `json:"auto_cast"`
	Impute       ImputePolicy      `json:"impute"`
	Remainder    RemainderPolicy   `json:"remainder"`
	Plan         *inspect.Plan     `json:"plan,omitempty"`
	Bindings     []bindingSnapshot `json:"bindings"`
	RemainderCol []string          `json:"remainder_columns"`
	FeatureNames []string          `json:"feature_names"`
}

// Save writes the fitted state to the blob store under key using the
// configured codec. It returns ErrNotFitted before a successful Fit.
func (tv *TableVectorizer) Save(ctx context.Context, store blobstore.BlobStore, key string) error {
	if !tv.fitted {
		return ErrNotFitted
	}

	snap := snapshot{
		Threshold:    tv.opts.threshold,
		AutoCast:     tv.opts.autoCast,
		Impute:       tv.opts.impute,
		Remainder:    tv.opts.remainder,
		Plan:         tv.plan,
		RemainderCol: tv.remainder,
		FeatureNames: tv.featureNames,
	}
	for _, b := range tv.bindings {
		bs := bindingSnapshot{
			Group:        b.group,
			Columns:      b.columns,
			SkipImpute:   b.skipImpute,
			Fills:        b.fills,
			FeatureNames: b.featureNames,
		}
		switch spec := b.spec.(type) {
		case Directive:
			bs.Directive = spec
		case encoder.Stateful:
			bs.EncoderType = spec.TypeName()
			state, err := json.Marshal(spec)
			if err != nil {
				return fmt.Errorf("snapshot encoder state for group %q: %w", b.group, err)
			}
			bs.EncoderState = state
		default:
			return fmt.Errorf("transformer for group %q does not implement encoder.Stateful and cannot be saved", b.group)
		}
		snap.Bindings = append(snap.Bindings, bs)
	}

	payload, err := tv.opts.codec.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	name := tv.opts.codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("codec name %q too long for snapshot header", name)
	}

	var buf bytes.Buffer
	buf.Write(snapshotMagic[:])
	buf.WriteByte(snapshotVersion)
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
	buf.Write(payload)

	return store.Put(ctx, key, buf.Bytes())
}

// Load restores a fitted TableVectorizer from the blob store. Options
// recorded in the snapshot (threshold, policies, transformers) replace
// the corresponding defaults; runtime options such as the logger and
// metrics collector can still be passed here.
func Load(ctx context.Context, store blobstore.BlobStore, key string, optFns ...Option) (*TableVectorizer, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	tv, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	tv.opts.threshold = snap.Threshold
	tv.opts.autoCast = snap.AutoCast
	tv.opts.impute = snap.Impute
	tv.opts.remainder = snap.Remainder

	for _, bs := range snap.Bindings {
		b := &binding{
			group:        bs.Group,
			columns:      bs.Columns,
			skipImpute:   bs.SkipImpute,
			fills:        bs.Fills,
			featureNames: bs.FeatureNames,
		}
		if bs.Directive != "" {
			b.spec = bs.Directive
			b.enc = &encoder.Passthrough{Columns: bs.Columns, Fitted: true}
		} else {
			enc, err := encoder.New(bs.EncoderType)
			if err != nil {
				return nil, err
			}
			if err := json.Unmarshal(bs.EncoderState, enc); err != nil {
				return nil, fmt.Errorf("restore encoder state for group %q: %w", bs.Group, err)
			}
			b.spec = enc
			b.enc = enc
		}
		tv.opts.transformers[bs.Group] = b.spec
		tv.bindings = append(tv.bindings, b)
	}

	tv.plan = snap.Plan
	tv.remainder = snap.RemainderCol
	tv.featureNames = snap.FeatureNames
	tv.fitted = true

	return tv, nil
}

func decodeSnapshot(data []byte) (*snapshot, error) {
	if len(data) < len(snapshotMagic)+2 || !bytes.Equal(data[:4], snapshotMagic[:]) {
		return nil, fmt.Errorf("not a vectorizer snapshot (bad magic)")
	}
	version := data[4]
	if version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", version)
	}
	nameLen := int(data[5])
	if len(data) < 6+nameLen {
		return nil, fmt.Errorf("truncated snapshot header")
	}
	name := string(data[6 : 6+nameLen])
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("snapshot written with unknown codec %q", name)
	}

	var snap snapshot
	if err := c.Unmarshal(data[6+nameLen:], &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot payload: %w", err)
	}
	return &snap, nil
}
