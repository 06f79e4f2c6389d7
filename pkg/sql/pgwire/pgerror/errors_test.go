// Copyright 2026 The Cascade Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package pgerror

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/cascadedb/cascade/pkg/sql/pgwire/pgcode"
)

func TestGetPGCode(t *testing.T) {
	require.Equal(t, pgcode.MakeCode(""), GetPGCode(nil))

	// Plain errors have no explicit code.
	plain := errors.New("boom")
	require.Equal(t, pgcode.Uncategorized, GetPGCode(plain))
	require.False(t, HasCandidateCode(plain))

	coded := Newf(pgcode.InvalidTableDefinition, "bad table %q", "t")
	require.Equal(t, pgcode.InvalidTableDefinition, GetPGCode(coded))
	require.True(t, HasCandidateCode(coded))
	require.Equal(t, `bad table "t"`, coded.Error())

	// The innermost code wins when several layers annotate.
	wrapped := WithCandidateCode(coded, pgcode.FeatureNotSupported)
	require.Equal(t, pgcode.InvalidTableDefinition, GetPGCode(wrapped))

	// An assertion failure anywhere in the chain overrides candidates.
	assertion := Wrapf(errors.AssertionFailedf("broken invariant"),
		pgcode.InvalidTableDefinition, "while planning")
	require.Equal(t, pgcode.Internal, GetPGCode(assertion))
	require.True(t, errors.HasAssertionFailure(assertion))
}

func TestWrapfNil(t *testing.T) {
	require.NoError(t, Wrapf(nil, pgcode.Internal, "ignored"))
	require.NoError(t, WithCandidateCode(nil, pgcode.Internal))
}
