// Package policy 集中所有资源归属判定。
// 谓词都是纯函数：先经过认证中间件和资源加载，再在 service 层调用。
package policy

import "Connect_Life/internal/model"

// Identity 认证中间件解析出的调用方身份，body 里的身份字段一律不可信
type Identity struct {
	ID   uint64
	Role string
}

func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// CanConfigureChat 仅群主可改社区配置；私聊（非群）一律拒绝
func CanConfigureChat(i Identity, chat *model.Chat) bool {
	return chat.IsGroup && chat.CreatorID == i.ID
}

// CanDeleteChat 删除社区只给管理员，群主自己也不行
func CanDeleteChat(i Identity, chat *model.Chat) bool {
	return chat.IsGroup && i.IsAdmin()
}

// CanJoinChat 只能加入开放的群；重复加入由调用方按幂等处理
func CanJoinChat(chat *model.Chat) bool {
	return chat.IsGroup && chat.Open
}

// CanCreateEvent 只有社区创建者能为该社区排活动
func CanCreateEvent(i Identity, chat *model.Chat) bool {
	return chat.CreatorID == i.ID
}

// CanManageVenues 场地的增删只给管理员
func CanManageVenues(i Identity) bool {
	return i.IsAdmin()
}

// CanAdminManageUser 管理员管理他人账号；禁止通过管理通道操作自己，
// 避免管理员悄悄把自己锁死
func CanAdminManageUser(i Identity, targetID uint64) bool {
	return i.IsAdmin() && i.ID != targetID
}

// CanPostMessage 发消息要求是成员
func CanPostMessage(i Identity, memberIDs []uint64) bool {
	return isMember(i.ID, memberIDs)
}

// CanReadMessages 读消息同样要求是成员
func CanReadMessages(i Identity, memberIDs []uint64) bool {
	return isMember(i.ID, memberIDs)
}

func isMember(id uint64, memberIDs []uint64) bool {
	for _, m := range memberIDs {
		if m == id {
			return true
		}
	}
	return false
}
