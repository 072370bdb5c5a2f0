package deploy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

// Deployer drives the docker and kubernetes backends.
type Deployer struct {
	runner CommandRunner
	logger *logx.Logger
}

// NewDeployer builds the production deployer.
func NewDeployer() *Deployer {
	return NewDeployerWithRunner(newExecRunner())
}

// NewDeployerWithRunner injects a runner; tests use this to capture commands.
func NewDeployerWithRunner(r CommandRunner) *Deployer {
	return &Deployer{runner: r, logger: logx.NewLogger("deployer")}
}

// containerCmd picks docker, falling back to podman when docker is absent.
func (d *Deployer) containerCmd() string {
	if _, err := d.runner.LookPath("docker"); err != nil {
		if _, perr := d.runner.LookPath("podman"); perr == nil {
			return "podman"
		}
	}
	return "docker"
}

// DeployDocker builds the workflow image and starts a container serving it on
// the given host endpoint. Under dry-run nothing is executed.
func (d *Deployer) DeployDocker(ctx context.Context, agentsPath, workflowPath string, env []string, url string) error {
	run := config.RunFrom(ctx)
	if run.DryRun {
		d.logger.Info("dry run: skipping docker deployment of %s", workflowPath)
		return nil
	}

	bin := d.containerCmd()
	name := "maestro-" + uuid.NewString()[:8]
	image := "maestro-workflow:latest"

	if _, err := d.runner.Run(ctx, bin, "build", "-t", image, "."); err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "docker build failed")
	}

	args := []string{"run", "-d", "--name", name, "-p", hostPort(url) + ":5000"}
	for _, kv := range env {
		args = append(args, "-e", kv)
	}
	args = append(args,
		"-e", "AGENTS_FILE="+filepath.Base(agentsPath),
		"-e", "WORKFLOW_FILE="+filepath.Base(workflowPath),
		image,
	)
	if _, err := d.runner.Run(ctx, bin, args...); err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "docker run failed")
	}
	d.logger.Info("started container %s from %s", name, image)
	return nil
}

// DeployKubernetes renders a manifest for the workflow and applies it.
// Under dry-run the manifest is rendered but not applied.
func (d *Deployer) DeployKubernetes(ctx context.Context, agentsPath, workflowPath string, env []string) error {
	run := config.RunFrom(ctx)

	manifest := renderManifest(agentsPath, workflowPath, env)
	if run.DryRun {
		d.logger.Info("dry run: skipping kubernetes deployment of %s", workflowPath)
		return nil
	}

	dir, err := os.MkdirTemp("", "maestro-deploy-")
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "could not stage manifest")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "workflow-deployment.yaml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "could not write manifest")
	}

	if _, err := d.runner.Run(ctx, "kubectl", "apply", "-f", path); err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "kubectl apply failed")
	}
	d.logger.Info("applied manifest for %s", workflowPath)
	return nil
}

// hostPort extracts the port from a host:port endpoint, defaulting to 5000.
func hostPort(url string) string {
	if i := strings.LastIndex(url, ":"); i >= 0 && i+1 < len(url) {
		return url[i+1:]
	}
	return "5000"
}

// renderManifest produces the deployment plus NodePort service exposing the
// workflow on 30051.
func renderManifest(agentsPath, workflowPath string, env []string) string {
	var envBlock strings.Builder
	for _, kv := range env {
		key, value, _ := strings.Cut(kv, "=")
		fmt.Fprintf(&envBlock, "            - name: %s\n              value: %q\n", key, value)
	}
	return fmt.Sprintf(`apiVersion: apps/v1
kind: Deployment
metadata:
  name: maestro-workflow
  labels:
    app: maestro-workflow
spec:
  replicas: 1
  selector:
    matchLabels:
      app: maestro-workflow
  template:
    metadata:
      labels:
        app: maestro-workflow
    spec:
      containers:
        - name: workflow
          image: maestro-workflow:latest
          ports:
            - containerPort: 5000
          env:
            - name: AGENTS_FILE
              value: %q
            - name: WORKFLOW_FILE
              value: %q
%s---
apiVersion: v1
kind: Service
metadata:
  name: maestro-workflow
spec:
  type: NodePort
  selector:
    app: maestro-workflow
  ports:
    - port: 5000
      nodePort: 30051
`, filepath.Base(agentsPath), filepath.Base(workflowPath), envBlock.String())
}
