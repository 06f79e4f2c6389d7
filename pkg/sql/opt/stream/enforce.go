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

package stream

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/cascadedb/cascade/pkg/sql/opt"
	"github.com/cascadedb/cascade/pkg/sql/opt/props/physical"
	"github.com/cascadedb/cascade/pkg/util/log"
)

// Enforce returns a plan whose output satisfies the required distribution,
// inserting an exchange stage over the input unless the requirement is
// unconstrained. The ord argument is the row order the consumer needs
// across the redistribution; exchanges do not preserve row order, so only
// the unconstrained order is accepted.
func Enforce(
	ctx context.Context, a *Arena, input NodeID, required physical.RequiredDist, ord opt.Ordering,
) (NodeID, error) {
	if required.IsAny() {
		return input, nil
	}
	if !ord.Any() {
		return 0, errors.AssertionFailedf(
			"ordered redistribution is not supported (requested %s)", ord)
	}
	target := required.TargetDistribution()
	log.VEventf(ctx, 2, "inserting exchange: %s -> %s", a.Distribution(input), target)
	return a.addExchange(input, target), nil
}

// EnforceIfNotSatisfied is like Enforce, but idempotent: the input is
// returned unchanged when its distribution already satisfies the
// requirement.
func EnforceIfNotSatisfied(
	ctx context.Context, a *Arena, input NodeID, required physical.RequiredDist, ord opt.Ordering,
) (NodeID, error) {
	if required.IsSatisfiedBy(a.Distribution(input)) {
		return input, nil
	}
	return Enforce(ctx, a, input, required, ord)
}
