// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aliasfixture

import (
	"strings"

	"github.com/pkg/errors"

	cage_strings "github.com/codeactual/aliasfixture/internal/cage/strings"
)

// Check audits the entries and returns one error per violation:
//
//   - Within a namespace, qualified and alias entries must return identical values.
//   - Invoking other namespaces must not change a namespace's values.
//   - If expect holds a value for a namespace, all of its entries must return it.
//
// The expect map is keyed by namespace. Keys which match no entry are also violations.
func Check(entries []Entry, expect map[string]int) (errs []error) {
	namespaces := Namespaces(entries)

	byNs := make(map[string][]Entry)
	for _, e := range entries {
		byNs[e.Namespace] = append(byNs[e.Namespace], e)
	}

	baseline := make(map[string]*Report)

	for _, ns := range namespaces {
		baseline[ns] = Invoke(byNs[ns]...)
		errs = append(errs, checkEquivalence(ns, byNs[ns], baseline[ns])...)
	}

	for _, ns := range namespaces {
		errs = append(errs, checkIsolation(ns, namespaces, byNs, baseline[ns])...)
	}

	expectKeys := make([]string, 0, len(expect))
	for ns := range expect {
		expectKeys = append(expectKeys, ns)
	}
	cage_strings.SortStable(expectKeys)

	for _, ns := range expectKeys {
		report, ok := baseline[ns]
		if !ok {
			errs = append(errs, errors.Errorf("expected value for namespace [%s] but no fixture function uses it, available: %s", ns, strings.Join(namespaces, ", ")))
			continue
		}
		for _, res := range report.Results {
			if res.Value != expect[ns] {
				errs = append(errs, errors.Errorf("[%s] returned [%d], expected [%d] for namespace [%s]", res.Name, res.Value, expect[ns], ns))
			}
		}
	}

	return errs
}

func checkEquivalence(ns string, entries []Entry, report *Report) (errs []error) {
	refs := cage_strings.NewSet()
	for _, e := range entries {
		refs.Add(string(e.Ref))
	}
	for _, ref := range []Ref{RefQualified, RefAlias} {
		if !refs.Contains(string(ref)) {
			errs = append(errs, errors.Errorf("namespace [%s] has no %s reference to compare", ns, ref))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	// Compare every entry to the first qualified one.
	var want Result
	for _, res := range report.Results {
		if res.Ref == string(RefQualified) {
			want = res
			break
		}
	}

	for _, res := range report.Results {
		if res.Name == want.Name {
			continue
		}
		if res.Value != want.Value {
			errs = append(errs, errors.Errorf(
				"namespace [%s]: %s reference [%s] returned [%d], %s reference [%s] returned [%d]",
				ns, res.Ref, res.Name, res.Value, want.Ref, want.Name, want.Value,
			))
		}
	}

	return errs
}

func checkIsolation(ns string, namespaces []string, byNs map[string][]Entry, before *Report) (errs []error) {
	for _, other := range namespaces {
		if other == ns {
			continue
		}

		_ = Invoke(byNs[other]...)
		after := Invoke(byNs[ns]...)

		for n, res := range after.Results {
			if prev := before.Results[n]; res.Value != prev.Value {
				errs = append(errs, errors.Errorf(
					"namespace [%s] not isolated from [%s]: [%s] returned [%d] before and [%d] after",
					ns, other, res.Name, prev.Value, res.Value,
				))
			}
		}
	}
	return errs
}
