package cover

// Cover is a cached lookup result. Both urls are empty when the lookup found no match.
type Cover struct {
	Cover   string `redis:"cover"`
	Preview string `redis:"preview"`
}
