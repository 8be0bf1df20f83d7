package charts

import "launchdash/domain/launch"

// group is an intermediate bucket of records sharing a key.
type group struct {
	Key     string
	Records []launch.Record
}

// groupBy buckets records by key, keeping first-occurrence order of keys.
func groupBy(records []launch.Record, key func(launch.Record) string) []group {
	index := make(map[string]int)
	groups := make([]group, 0)

	for _, rec := range records {
		k := key(rec)
		i, exists := index[k]
		if !exists {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}

func sumClass(records []launch.Record) float64 {
	var total float64
	for _, rec := range records {
		total += float64(rec.Class)
	}
	return total
}

func keys(groups []group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	return out
}
