package logoset

// fallbackEntries is the built-in logo set used whenever no valid external
// data is supplied.
var fallbackEntries = []Entry{
	{Name: "Go", Logo: "https://cdn.simpleicons.org/go", Glow: true},
	{Name: "Docker", Logo: "https://cdn.simpleicons.org/docker"},
	{Name: "Kubernetes", Logo: "https://cdn.simpleicons.org/kubernetes", Scale: 1.1},
	{Name: "PostgreSQL", Logo: "https://cdn.simpleicons.org/postgresql"},
	{Name: "Redis", Logo: "https://cdn.simpleicons.org/redis"},
	{Name: "Grafana", Logo: "https://cdn.simpleicons.org/grafana", Scale: 0.9},
	{Name: "Prometheus", Logo: "https://cdn.simpleicons.org/prometheus"},
	{Name: "Terraform", Logo: "https://cdn.simpleicons.org/terraform"},
	{Name: "Linux", Logo: "https://cdn.simpleicons.org/linux", Glow: true},
	{Name: "Git", Logo: "https://cdn.simpleicons.org/git"},
	{Name: "GitHub", Logo: "https://cdn.simpleicons.org/github"},
	{Name: "NGINX", Logo: "https://cdn.simpleicons.org/nginx", Scale: 0.85},
	{Name: "Kafka", Logo: "https://cdn.simpleicons.org/apachekafka"},
	{Name: "RabbitMQ", Logo: "https://cdn.simpleicons.org/rabbitmq"},
	{Name: "Vault", Logo: "https://cdn.simpleicons.org/vault"},
	{Name: "Consul", Logo: "https://cdn.simpleicons.org/consul"},
	{Name: "Helm", Logo: "https://cdn.simpleicons.org/helm", Scale: 0.9},
	{Name: "Istio", Logo: "https://cdn.simpleicons.org/istio"},
	{Name: "etcd", Logo: "https://cdn.simpleicons.org/etcd"},
	{Name: "Envoy", Logo: "https://cdn.simpleicons.org/envoyproxy"},
	{Name: "SQLite", Logo: "https://cdn.simpleicons.org/sqlite"},
	{Name: "WireGuard", Logo: "https://cdn.simpleicons.org/wireguard", Glow: true},
	{Name: "Caddy", Logo: "https://cdn.simpleicons.org/caddy", Scale: 1.2},
}

// Fallback returns a fresh copy of the built-in logo set so callers can
// mutate their slice without touching the shared default.
func Fallback() []Entry {
	dup := make([]Entry, len(fallbackEntries))
	copy(dup, fallbackEntries)
	return dup
}

// FallbackSize is the number of entries in the built-in set.
func FallbackSize() int {
	return len(fallbackEntries)
}
