package handler

import "context"

type workerStub struct {
	lastPath    string
	lastPayload any
	data        map[string]any
	err         error
}

func (s *workerStub) PostJSON(ctx context.Context, path string, payload any, requestID string) (map[string]any, error) {
	s.lastPath = path
	s.lastPayload = payload
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}
