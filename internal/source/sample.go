package source

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DataFilesExist reports whether all four data files are present in dir.
func DataFilesExist(dir string) bool {
	for _, name := range []string{balanceFile, fixedCostsFile, incomeFile, scenariosFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

// WriteSampleData scaffolds a data directory with example XML files so a new
// user has something to edit. Existing files are never overwritten.
func WriteSampleData(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	today := time.Now().Format(dateLayout)
	files := map[string]string{
		balanceFile: fmt.Sprintf(`<balance>
  <current as-of="%s">500000</current>
</balance>
`, today),
		fixedCostsFile: `<fixed-costs>
  <cost>
    <name>Rent</name>
    <amount>85000</amount>
  </cost>
  <cost>
    <name>Utilities</name>
    <amount>12000</amount>
  </cost>
</fixed-costs>
`,
		incomeFile: fmt.Sprintf(`<income>
  <entry frequency="monthly">
    <source>Freelance</source>
    <amount>200000</amount>
    <from>%s</from>
  </entry>
</income>
`, today),
		scenariosFile: `<scenarios>
  <scenario>
    <name>Minimal</name>
    <activity>
      <name>Gym</name>
      <cost>1000</cost>
      <days-per-week>3</days-per-week>
    </activity>
  </scenario>
  <scenario>
    <name>Comfortable</name>
    <activity>
      <name>Dining out</name>
      <cost>5000</cost>
      <days-per-week>2</days-per-week>
    </activity>
    <activity>
      <name>Hobby</name>
      <cost>3000</cost>
      <days-per-week>1</days-per-week>
    </activity>
  </scenario>
</scenarios>
`,
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue // never clobber user data
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}
