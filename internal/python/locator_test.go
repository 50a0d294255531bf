package python

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubLocator(resolvable map[string]string, versions map[string]string) *Locator {
	return &Locator{
		lookPath: func(name string) (string, error) {
			if path, ok := resolvable[name]; ok {
				return path, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		runVersion: func(_ context.Context, path string) (string, error) {
			output, ok := versions[path]
			if !ok {
				return "", errors.New("exit status 1")
			}
			return output, nil
		},
	}
}

func TestLocateAcceptsFirstWorkingCandidate(t *testing.T) {
	t.Parallel()

	loc := stubLocator(
		map[string]string{"python3": "/usr/bin/python3"},
		map[string]string{"/usr/bin/python3": "Python 3.12.4\n"},
	)

	interp, err := loc.Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/python3", interp.Path)
	require.Equal(t, "3.12.4", interp.Version)
}

func TestLocateSkipsCandidatesThatFailVersionCheck(t *testing.T) {
	t.Parallel()

	loc := stubLocator(
		map[string]string{
			"python3": "/usr/bin/python3",
			"python":  "/usr/bin/python",
		},
		map[string]string{"/usr/bin/python": "Python 3.10.1"},
	)

	interp, err := loc.Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/python", interp.Path)
	require.Equal(t, "3.10.1", interp.Version)
}

func TestLocateRejectsUnparseableVersionOutput(t *testing.T) {
	t.Parallel()

	loc := stubLocator(
		map[string]string{
			"python3": "/usr/bin/python3",
			"python":  "/usr/bin/python",
		},
		map[string]string{
			"/usr/bin/python3": "not a version string",
			"/usr/bin/python":  "Python 3.9",
		},
	)

	interp, err := loc.Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/python", interp.Path)
	require.Equal(t, "3.9", interp.Version)
}

func TestLocateReportsNotFoundAfterExhaustingCandidates(t *testing.T) {
	t.Parallel()

	loc := stubLocator(nil, nil)

	_, err := loc.Locate(context.Background())
	require.ErrorIs(t, err, ErrInterpreterNotFound)
}

func TestLocateHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loc := stubLocator(
		map[string]string{"python3": "/usr/bin/python3"},
		map[string]string{"/usr/bin/python3": "Python 3.12.0"},
	)

	_, err := loc.Locate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCandidatesPreferBareNames(t *testing.T) {
	t.Parallel()

	names := candidates()
	require.NotEmpty(t, names)
	require.Contains(t, []string{"python3", "py"}, names[0])
}
