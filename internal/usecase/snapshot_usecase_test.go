package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
	mock_usecase "github.com/Gregy/synology-surveillance-get-image/internal/mocks/usecase"
	"github.com/Gregy/synology-surveillance-get-image/internal/usecase"
	"go.uber.org/mock/gomock"
)

const (
	testSnapshotKey = "synology:Snap_3_0"
	testSnapshotTTL = 10 * time.Second
)

func mustNewSnapshotRequest(t *testing.T, camera, profile int) domain.SnapshotRequest {
	t.Helper()
	cameraID, err := domain.NewCameraID(camera)
	if err != nil {
		t.Fatalf("failed to create CameraID: %v", err)
	}
	streamProfile, err := domain.NewStreamProfile(profile)
	if err != nil {
		t.Fatalf("failed to create StreamProfile: %v", err)
	}
	return domain.NewSnapshotRequest(cameraID, streamProfile)
}

type snapshotMocks struct {
	resolver     *mock_usecase.MockAPIResolver
	session      *mock_usecase.MockSessionProvider
	transport    *mock_usecase.MockTransport
	cacheClient  *mock_usecase.MockCacheClient
	keyGenerator *mock_usecase.MockCacheKeyGenerator
	cacheConfig  *mock_usecase.MockCacheConfig
	urlGenerator *mock_usecase.MockWebAPIURLGenerator
}

func newSnapshotMocks(ctrl *gomock.Controller) snapshotMocks {
	return snapshotMocks{
		resolver:     mock_usecase.NewMockAPIResolver(ctrl),
		session:      mock_usecase.NewMockSessionProvider(ctrl),
		transport:    mock_usecase.NewMockTransport(ctrl),
		cacheClient:  mock_usecase.NewMockCacheClient(ctrl),
		keyGenerator: mock_usecase.NewMockCacheKeyGenerator(ctrl),
		cacheConfig:  mock_usecase.NewMockCacheConfig(ctrl),
		urlGenerator: mock_usecase.NewMockWebAPIURLGenerator(ctrl),
	}
}

func (m snapshotMocks) newUseCase() usecase.SnapshotUseCase {
	return usecase.NewSnapshotUseCase(m.resolver, m.session, m.transport, m.cacheClient, m.keyGenerator, m.cacheConfig, m.urlGenerator)
}

// expectColdStart はキャッシュミスからSIDの取得までを期待値として設定する
func (m snapshotMocks) expectColdStart(sid domain.SessionID) {
	m.keyGenerator.EXPECT().SnapshotKey(gomock.Any()).Return(testSnapshotKey)
	m.cacheClient.EXPECT().Get(gomock.Any(), testSnapshotKey).Return(nil, domain.ErrCacheMiss)
	m.resolver.EXPECT().Resolve(gomock.Any(), domain.RequiredAPINames()).Return(domain.NewAPIInfo(testAPIEntries()), nil)
	m.session.EXPECT().EnsureAuthenticated(gomock.Any(), domain.NewAPIInfo(testAPIEntries())).Return(sid, nil)
}

func TestSnapshotUseCase_Execute(t *testing.T) {
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	retried := []byte{0xff, 0xd8, 0xff, 0xdb}

	tests := []struct {
		name       string
		setupMocks func(t *testing.T, m snapshotMocks)
		want       []byte
		wantErr    error
	}{
		{
			name: "正常系: キャッシュヒットの場合、上流に問い合わせずに返す",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				m.keyGenerator.EXPECT().SnapshotKey(gomock.Any()).Return(testSnapshotKey)
				m.cacheClient.EXPECT().Get(gomock.Any(), testSnapshotKey).Return(jpeg, nil)
			},
			want: jpeg,
		},
		{
			name: "正常系: キャッシュミスの場合、取得した画像を10秒のTTLで保存する",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				sid := mustNewSessionID(t, "sid-1")
				m.expectColdStart(sid)
				m.urlGenerator.EXPECT().SnapshotURL("entry.cgi", gomock.Any(), sid).Return("snapshot-url-1")
				m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url-1", http.StatusOK, domain.JPEGContentType).Return(jpeg, nil)
				m.cacheConfig.EXPECT().SnapshotTTL().Return(testSnapshotTTL)
				m.cacheClient.EXPECT().Set(gomock.Any(), testSnapshotKey, jpeg, testSnapshotTTL).Return(nil)
			},
			want: jpeg,
		},
		{
			name: "正常系: 1回目が失敗した場合、再認証して新しいSIDで1度だけ再試行する",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				oldSID := mustNewSessionID(t, "expired-sid")
				newSID := mustNewSessionID(t, "renewed-sid")
				m.expectColdStart(oldSID)
				gomock.InOrder(
					m.urlGenerator.EXPECT().SnapshotURL("entry.cgi", gomock.Any(), oldSID).Return("snapshot-url-old"),
					m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url-old", http.StatusOK, domain.JPEGContentType).Return(nil, domain.ErrUnexpectedContentType),
					m.session.EXPECT().InvalidateAndReauthenticate(gomock.Any(), domain.NewAPIInfo(testAPIEntries())).Return(newSID, nil).Times(1),
					m.urlGenerator.EXPECT().SnapshotURL("entry.cgi", gomock.Any(), newSID).Return("snapshot-url-new"),
					m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url-new", http.StatusOK, domain.JPEGContentType).Return(retried, nil),
				)
				m.cacheConfig.EXPECT().SnapshotTTL().Return(testSnapshotTTL)
				m.cacheClient.EXPECT().Set(gomock.Any(), testSnapshotKey, retried, testSnapshotTTL).Return(nil)
			},
			want: retried,
		},
		{
			name: "正常系: キャッシュへの保存に失敗しても画像を返す",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				sid := mustNewSessionID(t, "sid-1")
				m.expectColdStart(sid)
				m.urlGenerator.EXPECT().SnapshotURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("snapshot-url")
				m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url", http.StatusOK, domain.JPEGContentType).Return(jpeg, nil)
				m.cacheConfig.EXPECT().SnapshotTTL().Return(testSnapshotTTL)
				m.cacheClient.EXPECT().Set(gomock.Any(), testSnapshotKey, jpeg, testSnapshotTTL).Return(errors.New("read-only file system"))
			},
			want: jpeg,
		},
		{
			name: "異常系: 再試行も失敗した場合、2回目のエラーが返り3回目は行わない",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				oldSID := mustNewSessionID(t, "expired-sid")
				newSID := mustNewSessionID(t, "renewed-sid")
				m.expectColdStart(oldSID)
				m.urlGenerator.EXPECT().SnapshotURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("snapshot-url").Times(2)
				gomock.InOrder(
					m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url", http.StatusOK, domain.JPEGContentType).Return(nil, domain.ErrUnexpectedContentType),
					m.session.EXPECT().InvalidateAndReauthenticate(gomock.Any(), gomock.Any()).Return(newSID, nil),
					m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url", http.StatusOK, domain.JPEGContentType).Return(nil, domain.ErrUnexpectedStatus),
				)
			},
			wantErr: domain.ErrUnexpectedStatus,
		},
		{
			name: "異常系: 再認証に失敗した場合、ErrAuthenticationFailedが返り再試行しない",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				m.expectColdStart(mustNewSessionID(t, "expired-sid"))
				m.urlGenerator.EXPECT().SnapshotURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("snapshot-url")
				m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url", http.StatusOK, domain.JPEGContentType).Return(nil, domain.ErrUnexpectedStatus)
				m.session.EXPECT().InvalidateAndReauthenticate(gomock.Any(), gomock.Any()).Return(domain.SessionID{}, usecase.ErrAuthenticationFailed)
			},
			wantErr: usecase.ErrAuthenticationFailed,
		},
		{
			name: "異常系: 最初の認証に失敗した場合、スナップショットを取得しない",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				m.keyGenerator.EXPECT().SnapshotKey(gomock.Any()).Return(testSnapshotKey)
				m.cacheClient.EXPECT().Get(gomock.Any(), testSnapshotKey).Return(nil, domain.ErrCacheMiss)
				m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.NewAPIInfo(testAPIEntries()), nil)
				m.session.EXPECT().EnsureAuthenticated(gomock.Any(), gomock.Any()).Return(domain.SessionID{}, usecase.ErrAuthenticationFailed)
			},
			wantErr: usecase.ErrAuthenticationFailed,
		},
		{
			name: "異常系: API情報の取得に失敗した場合、ErrDiscoveryFailedが返る",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				m.keyGenerator.EXPECT().SnapshotKey(gomock.Any()).Return(testSnapshotKey)
				m.cacheClient.EXPECT().Get(gomock.Any(), testSnapshotKey).Return(nil, domain.ErrCacheMiss)
				m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.APIInfo{}, usecase.ErrDiscoveryFailed)
			},
			wantErr: usecase.ErrDiscoveryFailed,
		},
		{
			name: "正常系: 上流が空の画像を返した場合、再認証して再試行する",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				oldSID := mustNewSessionID(t, "sid-1")
				newSID := mustNewSessionID(t, "sid-2")
				m.expectColdStart(oldSID)
				gomock.InOrder(
					m.urlGenerator.EXPECT().SnapshotURL("entry.cgi", gomock.Any(), oldSID).Return("snapshot-url-old"),
					m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url-old", http.StatusOK, domain.JPEGContentType).Return([]byte{}, nil),
					m.session.EXPECT().InvalidateAndReauthenticate(gomock.Any(), gomock.Any()).Return(newSID, nil),
					m.urlGenerator.EXPECT().SnapshotURL("entry.cgi", gomock.Any(), newSID).Return("snapshot-url-new"),
					m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url-new", http.StatusOK, domain.JPEGContentType).Return(jpeg, nil),
				)
				m.cacheConfig.EXPECT().SnapshotTTL().Return(testSnapshotTTL)
				m.cacheClient.EXPECT().Set(gomock.Any(), testSnapshotKey, jpeg, testSnapshotTTL).Return(nil)
			},
			want: jpeg,
		},
		{
			name: "異常系: 再試行でも空の画像が返った場合、ErrEmptySnapshotが返りキャッシュしない",
			setupMocks: func(t *testing.T, m snapshotMocks) {
				m.expectColdStart(mustNewSessionID(t, "sid-1"))
				m.urlGenerator.EXPECT().SnapshotURL(gomock.Any(), gomock.Any(), gomock.Any()).Return("snapshot-url").Times(2)
				m.transport.EXPECT().Fetch(gomock.Any(), "snapshot-url", http.StatusOK, domain.JPEGContentType).Return([]byte{}, nil).Times(2)
				m.session.EXPECT().InvalidateAndReauthenticate(gomock.Any(), gomock.Any()).Return(mustNewSessionID(t, "sid-2"), nil)
			},
			wantErr: usecase.ErrEmptySnapshot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newSnapshotMocks(ctrl)
			tt.setupMocks(t, m)

			got, err := m.newUseCase().Execute(context.Background(), mustNewSnapshotRequest(t, 3, 0))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Data()); diff != "" {
				t.Errorf("Execute() data mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(domain.JPEGContentType, got.ContentType()); diff != "" {
				t.Errorf("Execute() content type mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
