// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/bayesearch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return core.ID(id), nil
}

// trialOutcomeMUS encodes a core.TrialOutcome field by field.
type trialOutcomeMUS struct{}

var trialOutcomeSer = trialOutcomeMUS{}

func (trialOutcomeMUS) Marshal(v core.TrialOutcome, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(v.Campaign), bs)
	n += varint.Int.Marshal(v.Trial, bs[n:])
	n += ord.Bool.Marshal(v.Found, bs[n:])
	n += varint.Int.Marshal(int(v.Area), bs[n:])
	n += varint.Int.Marshal(v.Rounds, bs[n:])
	n += varint.Int.Marshal(v.Searched, bs[n:])
	return
}

func (trialOutcomeMUS) Unmarshal(bs []byte) (v core.TrialOutcome, n int, err error) {
	var (
		campaign uint64
		area     int
		n1       int
	)
	campaign, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Campaign = core.ID(campaign)
	v.Trial, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Found, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	area, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Area = core.AreaID(area)
	v.Rounds, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Searched, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (trialOutcomeMUS) Size(v core.TrialOutcome) (size int) {
	size = varint.Uint64.Size(uint64(v.Campaign))
	size += varint.Int.Size(v.Trial)
	size += ord.Bool.Size(v.Found)
	size += varint.Int.Size(int(v.Area))
	size += varint.Int.Size(v.Rounds)
	return size + varint.Int.Size(v.Searched)
}

// MarshalTrialOutcome serializes a TrialOutcome to bytes.
func MarshalTrialOutcome(outcome *core.TrialOutcome) []byte {
	buf := make([]byte, trialOutcomeSer.Size(*outcome))
	trialOutcomeSer.Marshal(*outcome, buf)
	return buf
}

// UnmarshalTrialOutcome deserializes a TrialOutcome from bytes.
func UnmarshalTrialOutcome(data []byte) (*core.TrialOutcome, error) {
	outcome, n, err := trialOutcomeSer.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: trial outcome: %w", ErrSerializationFailed, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	return &outcome, nil
}
