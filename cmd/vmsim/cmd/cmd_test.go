package cmd

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"sigs.k8s.io/yaml"

	"github.com/sarchlab/vmsim/config"
)

func execute(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	rootCmd := NewRootCommand()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

var _ = Describe("vmsim", func() {
	It("should list policies and programs", func() {
		out, _, err := execute("policies")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("random\nround-robin\nusage-aware\n"))

		out, _, err = execute("programs")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("alpha\nbeta\ndelta\ngamma\n"))
	})

	It("should run a simulation from arguments", func() {
		out, _, err := execute("run", "4", "4", "fifo", "alpha",
			"--store", "memory")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(
			"alpha result is 20889600\n" +
				"page faults: 8\n" +
				"disk reads: 4\n" +
				"disk writes: 0\n"))
	})

	It("should reject a wrong number of arguments", func() {
		_, _, err := execute("run", "4", "4", "fifo")

		Expect(err).To(MatchError("expected 0 or 4 arguments, got 3"))
	})

	It("should reject a page count that is not a number", func() {
		_, _, err := execute("run", "many", "4", "fifo", "alpha")

		Expect(err).To(MatchError(ContainSubstring(`invalid page count "many"`)))
	})

	It("should report every configuration problem", func() {
		_, _, err := execute("run", "0", "0", "lru", "omega",
			"--store", "memory")

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("number of pages"))
		Expect(err.Error()).To(ContainSubstring("number of frames"))
		Expect(err.Error()).To(ContainSubstring(`invalid policy "lru"`))
		Expect(err.Error()).To(ContainSubstring(`invalid program "omega"`))
	})

	It("should warn about frames that can never be used", func() {
		_, stderr, err := execute("run", "2", "5", "random", "delta",
			"--store", "memory")

		Expect(err).NotTo(HaveOccurred())
		Expect(stderr).To(ContainSubstring("Warning: 5 frames for 2 pages"))
	})

	It("should layer the env file, the config file and the flags", func() {
		dir := GinkgoT().TempDir()
		envFile := filepath.Join(dir, ".env")
		configFile := filepath.Join(dir, "vmsim.yaml")

		Expect(os.WriteFile(envFile, []byte(
			"VMSIM_NUM_PAGES=10\nVMSIM_SEED=3\nVMSIM_PROGRAM=beta\n"), 0o600)).
			To(Succeed())
		Expect(os.WriteFile(configFile, []byte(
			"numFrames: 2\npolicy: custom\nseed: 5\n"), 0o600)).
			To(Succeed())

		out, _, err := execute("config",
			"--env-file", envFile,
			"--config", configFile,
			"--seed", "9",
			"--store", "memory")
		Expect(err).NotTo(HaveOccurred())

		var cfg config.Config
		Expect(yaml.Unmarshal([]byte(out), &cfg)).To(Succeed())
		Expect(cfg.NumPages).To(Equal(10))
		Expect(cfg.NumFrames).To(Equal(2))
		Expect(cfg.Policy).To(Equal("custom"))
		Expect(cfg.Program).To(Equal("beta"))
		Expect(cfg.Seed).To(Equal(int64(9)))
		Expect(string(cfg.Store.Kind)).To(Equal("memory"))
	})

	It("should let arguments override the config file", func() {
		configFile := filepath.Join(GinkgoT().TempDir(), "vmsim.yaml")
		Expect(os.WriteFile(configFile, []byte(
			"numPages: 50\nnumFrames: 5\npolicy: random\nprogram: gamma\n"),
			0o600)).To(Succeed())

		out, _, err := execute("config", "8", "3", "fifo", "alpha",
			"--config", configFile)
		Expect(err).NotTo(HaveOccurred())

		var cfg config.Config
		Expect(yaml.Unmarshal([]byte(out), &cfg)).To(Succeed())
		Expect(cfg.NumPages).To(Equal(8))
		Expect(cfg.NumFrames).To(Equal(3))
		Expect(cfg.Policy).To(Equal("fifo"))
		Expect(cfg.Program).To(Equal("alpha"))
	})
})
