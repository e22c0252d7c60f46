package store

import "souq-tech/internal/domain"

// AddAdminNotification stamps the notification with a fresh ID and the
// current time, forces it unread, and inserts it at the head of the log so
// the newest entry is always first. The log is memory-only and unbounded.
func (s *Store) AddAdminNotification(notification domain.AdminNotification) domain.AdminNotification {
	s.mu.Lock()
	notification.ID = s.newID()
	notification.CreatedAt = s.now()
	notification.Read = false

	s.notifications = append([]domain.AdminNotification{notification}, s.notifications...)
	s.mu.Unlock()

	s.notifySubscribers()
	return notification
}

// MarkNotificationAsRead flags the matching entry as read. Unknown IDs are a
// no-op.
func (s *Store) MarkNotificationAsRead(id string) {
	s.mu.Lock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			break
		}
	}
	s.mu.Unlock()

	s.notifySubscribers()
}

// ClearNotifications empties the log.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	s.notifications = []domain.AdminNotification{}
	s.mu.Unlock()

	s.notifySubscribers()
}

// Notifications returns a copy of the log, most recent first.
func (s *Store) Notifications() []domain.AdminNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AdminNotification{}, s.notifications...)
}

// UnreadNotificationsCount returns how many entries are still unread.
func (s *Store) UnreadNotificationsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, notification := range s.notifications {
		if !notification.Read {
			count++
		}
	}
	return count
}
