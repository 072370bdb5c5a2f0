// Package deploy resolves which deployment backend an invocation targets and
// drives the container/cluster backends. The streamlit fallback is spawned by
// the process supervisor, not here.
package deploy

import "fmt"

// Target is one of the three deployment backends.
type Target int

const (
	// TargetDocker is the containerized runtime.
	TargetDocker Target = iota
	// TargetKubernetes is the cluster orchestration runtime.
	TargetKubernetes
	// TargetStreamlit is the local interactive UI fallback.
	TargetStreamlit
)

func (t Target) String() string {
	switch t {
	case TargetDocker:
		return "docker"
	case TargetKubernetes:
		return "kubernetes"
	case TargetStreamlit:
		return "streamlit"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

// Flags are the backend selection switches from the command line.
type Flags struct {
	Docker     bool
	K8s        bool
	Kubernetes bool
	Streamlit  bool
	AutoPrompt bool
	URL        string
}

// Cluster reports whether either cluster alias flag is set.
func (f Flags) Cluster() bool { return f.K8s || f.Kubernetes }

// ResolveTarget selects exactly one backend. Precedence is fixed: docker wins
// over cluster, and everything else falls through to the streamlit UI — an
// explicit --streamlit flag carries no extra weight over the fallback.
func ResolveTarget(f Flags) Target {
	switch {
	case f.Docker:
		return TargetDocker
	case f.Cluster():
		return TargetKubernetes
	default:
		return TargetStreamlit
	}
}

// ResolvedURL returns the deploy endpoint, defaulting when the flag is empty.
func (f Flags) ResolvedURL() string {
	if f.URL == "" {
		return "127.0.0.1:5000"
	}
	return f.URL
}

// Fixed success URLs reported per backend.
const (
	DockerURL     = "http://127.0.0.1:5000"
	KubernetesURL = "http://<kubernetes address>:30051"
	StreamlitURL  = "http://localhost:8501/?embed=true"
)

// URLFor maps a backend to its reported success URL.
func URLFor(t Target) string {
	switch t {
	case TargetDocker:
		return DockerURL
	case TargetKubernetes:
		return KubernetesURL
	default:
		return StreamlitURL
	}
}

// BuildEnv assembles the environment spec handed to a backend: the user
// entries in their original order, plus the auto-run marker when the
// auto-prompt flag is set. Order is preserved so later duplicates can
// override earlier ones in the consuming backend.
func BuildEnv(env []string, autoPrompt bool) []string {
	out := make([]string, 0, len(env)+1)
	out = append(out, env...)
	if autoPrompt {
		out = append(out, "AUTO_RUN=true")
	}
	return out
}
