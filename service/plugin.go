package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Jeffail/gabs/v2"

	"kawe_webmanager/model"
)

// PluginResult is the outcome of one plugin API call. Reachable=false means
// the game server never answered; callers decide whether to fall back to a
// direct database write.
type PluginResult struct {
	Reachable bool
	Success   bool
	Error     string
	Message   string
}

type PluginClient struct {
	BaseURL string
	Token   string
	Client  *http.Client
	Logger  LoggerInterface
}

func NewPluginClient(host string, port int, token string, timeout time.Duration, logger LoggerInterface) *PluginClient {
	return &PluginClient{
		BaseURL: fmt.Sprintf("http://%s:%d", host, port),
		Token:   token,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

func (p *PluginClient) SetRole(actorId, targetId string, role int) *PluginResult {
	return p.post("/faction/set-role", map[string]interface{}{
		"steamId":       actorId,
		"targetSteamId": targetId,
		"role":          role,
	})
}

func (p *PluginClient) Invite(actorId, targetId string) *PluginResult {
	return p.post("/faction/invite", map[string]interface{}{
		"steamId":       actorId,
		"targetSteamId": targetId,
	})
}

func (p *PluginClient) AcceptRequest(actorId, targetId string) *PluginResult {
	return p.post("/faction/accept-request", map[string]interface{}{
		"steamId":       actorId,
		"targetSteamId": targetId,
	})
}

func (p *PluginClient) RejectRequest(actorId, targetId string) *PluginResult {
	return p.post("/faction/reject-request", map[string]interface{}{
		"steamId":       actorId,
		"targetSteamId": targetId,
	})
}

func (p *PluginClient) SetAlias(actorId string, role int, alias string) *PluginResult {
	return p.post("/faction/set-alias", map[string]interface{}{
		"steamId": actorId,
		"role":    role,
		"alias":   alias,
	})
}

func (p *PluginClient) post(path string, payload map[string]interface{}) *PluginResult {
	body, err := json.Marshal(payload)
	if err != nil {
		return &PluginResult{Reachable: false, Error: model.ErrInternal}
	}

	req, err := http.NewRequest(http.MethodPost, p.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return &PluginResult{Reachable: false, Error: model.ErrInternal}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.Token != "" {
		req.Header.Set("X-Auth-Token", p.Token)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		code := model.ErrPluginUnavailable
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			code = model.ErrPluginTimeout
		}
		if p.Logger != nil {
			p.Logger.Warning(fmt.Sprintf("Plugin API call %s failed: %v", path, err))
		}
		return &PluginResult{Reachable: false, Error: code}
	}
	defer resp.Body.Close()

	result := &PluginResult{Reachable: true}

	parsed, err := gabs.ParseJSONBuffer(resp.Body)
	if err != nil {
		// Reached the server but it did not speak our protocol. Treat as
		// unreachable so the caller can fall back.
		if p.Logger != nil {
			p.Logger.Warning(fmt.Sprintf("Plugin API call %s returned unparseable body: %v", path, err))
		}
		return &PluginResult{Reachable: false, Error: model.ErrPluginUnavailable}
	}

	if v, ok := parsed.Path("success").Data().(bool); ok {
		result.Success = v
	}
	if v, ok := parsed.Path("error").Data().(string); ok {
		result.Error = v
	}
	if v, ok := parsed.Path("message").Data().(string); ok {
		result.Message = v
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		result.Success = false
		if result.Error == "" {
			result.Error = model.ErrPluginUnavailable
		}
	}

	return result
}
