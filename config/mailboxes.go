// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/isatdatapro/isatdatapro-api/models"
	"github.com/isatdatapro/isatdatapro-api/utils"
)

// DefaultMailboxName names the mailbox built from IDP_ACCESS_ID and IDP_PASSWORD
const DefaultMailboxName = "default"

// mailboxFile is the layout of IDP_MAILBOXES_FILE:
//
//	mailboxes:
//	  - name: fleet
//	    accessId: "70000934"
//	    password: "..."
type mailboxFile struct {
	Mailboxes []models.Mailbox `json:"mailboxes"`
}

// LoadMailboxes reads a YAML mailbox list. Every entry needs a name and both credentials.
func LoadMailboxes(path string) ([]models.Mailbox, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.LoadMailboxes: %w", err)
	}

	var file mailboxFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("config.LoadMailboxes: %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Mailboxes))
	for i, m := range file.Mailboxes {
		if m.Name == "" {
			return nil, fmt.Errorf("config.LoadMailboxes: entry %d has no name", i)
		}
		if !m.IsComplete() {
			return nil, fmt.Errorf("config.LoadMailboxes: mailbox %s: %w", m.Name, utils.ErrMissingCredentials)
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("config.LoadMailboxes: duplicate mailbox %s", m.Name)
		}
		seen[m.Name] = true
	}
	return file.Mailboxes, nil
}

// ResolveMailbox picks the mailbox to use. An empty name selects the
// credentials from the environment, falling back to the only entry of the
// mailbox file when there is exactly one.
func (c *Config) ResolveMailbox(name string) (models.Mailbox, error) {
	env := models.Mailbox{Name: DefaultMailboxName, AccessID: c.Mailbox.AccessID, Password: c.Mailbox.Password}
	if name == DefaultMailboxName || (name == "" && env.IsComplete()) {
		if !env.IsComplete() {
			return models.Mailbox{}, utils.ErrMissingCredentials
		}
		return env, nil
	}

	if c.Mailbox.MailboxesFile == "" {
		if name == "" {
			return models.Mailbox{}, utils.ErrMissingCredentials
		}
		return models.Mailbox{}, fmt.Errorf("%w: %s (IDP_MAILBOXES_FILE is not set)", utils.ErrMailboxNotFound, name)
	}
	mailboxes, err := LoadMailboxes(c.Mailbox.MailboxesFile)
	if err != nil {
		return models.Mailbox{}, err
	}
	if name == "" {
		if len(mailboxes) == 1 {
			return mailboxes[0], nil
		}
		return models.Mailbox{}, fmt.Errorf("%w: %d mailboxes configured, pick one by name", utils.ErrMissingCredentials, len(mailboxes))
	}
	for _, m := range mailboxes {
		if m.Name == name {
			return m, nil
		}
	}
	return models.Mailbox{}, fmt.Errorf("%w: %s", utils.ErrMailboxNotFound, name)
}
