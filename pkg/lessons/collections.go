package lessons

import (
	"context"
	"fmt"
	"sort"

	"github.com/mlotufo/primer/pkg/core"
)

// Collections demonstrates slices, maps, set idioms and arrays.
func Collections() core.Lesson {
	return core.Lesson{
		ID:    "flow/collections",
		Topic: "flow",
		Title: "Collections",
		Run:   runCollections,
	}
}

func runCollections(ctx context.Context, env *core.Env) error {
	fmt.Fprintln(env.Out, "-- slices --")
	nums := []int{1, 2, 3, 4, 5}
	nums = append(nums, 6)
	nums = append(nums, 7, 8)
	fmt.Fprintf(env.Out, "Slice: %v\n", nums)

	fmt.Fprintln(env.Out, "-- maps --")
	profile := map[string]any{
		"name": "John",
		"age":  30,
		"city": "New York",
	}
	profile["country"] = "USA"
	fmt.Fprintf(env.Out, "Map: %v\n", profile)

	// Map iteration order is randomized; sort keys for stable output.
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(env.Out, "  %s: %v\n", k, profile[k])
	}

	fmt.Fprintln(env.Out, "-- sets --")
	seen := map[int]struct{}{1: {}, 2: {}, 3: {}, 4: {}, 5: {}}
	seen[6] = struct{}{}
	members := make([]int, 0, len(seen))
	for n := range seen {
		members = append(members, n)
	}
	sort.Ints(members)
	fmt.Fprintf(env.Out, "Set: %v\n", members)

	fmt.Fprintln(env.Out, "-- arrays --")
	triple := [3]int{1, 2, 3}
	fmt.Fprintf(env.Out, "Array: %v\n", triple)

	return nil
}
