package athena

import (
	"athena-relay-service/internal/app/config"
	"sync"
	"time"
)

type upstreamCall struct {
	service string
	outcome string
}

type recordingMetrics struct {
	mu    sync.Mutex
	calls []upstreamCall
}

func (m *recordingMetrics) ObserveUpstreamCall(service, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, upstreamCall{service: service, outcome: outcome})
}

func (m *recordingMetrics) IncRegistration(string) {}

func (m *recordingMetrics) outcomes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	outcomes := make([]string, 0, len(m.calls))
	for _, call := range m.calls {
		outcomes = append(outcomes, call.outcome)
	}
	return outcomes
}

func testAthenaConfig(baseUrl string) config.Athena {
	return config.Athena{
		ClientID:     "relay-client",
		ClientSecret: "relay-secret",
		AuthBaseUrl:  baseUrl,
		ApiBaseUrl:   baseUrl,
		PracticeID:   "1128700",
		Scope:        "athena/service/Athenanet.MDP.*",
	}
}
