package deploy

import "path/filepath"

// MockInstaller is a test double for Installer
type MockInstaller struct {
	// Function mock - set this to customize behavior
	InstallFunc func(root, filename, content string) (InstalledSite, error)

	// Call tracking - check this to verify interactions
	Calls []InstallCall
}

// InstallCall records arguments passed to Install
type InstallCall struct {
	Root     string
	Filename string
	Content  string
}

// Install records the call and invokes the mock function if set.
// The default behavior reports the conventional paths without touching disk.
func (m *MockInstaller) Install(root, filename, content string) (InstalledSite, error) {
	m.Calls = append(m.Calls, InstallCall{Root: root, Filename: filename, Content: content})
	if m.InstallFunc != nil {
		return m.InstallFunc(root, filename, content)
	}
	return InstalledSite{
		ConfigPath:  filepath.Join(root, "sites-available", filename),
		EnabledPath: filepath.Join(root, "sites-enabled", filename),
	}, nil
}

// MockValidator is a test double for Validator
type MockValidator struct {
	ValidateFunc func() Outcome
	Calls        int
}

// Validate records the call and invokes the mock function if set.
// The default behavior reports success.
func (m *MockValidator) Validate() Outcome {
	m.Calls++
	if m.ValidateFunc != nil {
		return m.ValidateFunc()
	}
	return Outcome{Success: true}
}

// MockReloader is a test double for Reloader
type MockReloader struct {
	ReloadFunc func() Outcome
	Calls      int
}

// Reload records the call and invokes the mock function if set.
// The default behavior reports success.
func (m *MockReloader) Reload() Outcome {
	m.Calls++
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return Outcome{Success: true}
}
