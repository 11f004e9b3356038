package sqlinline

const QSelectUserByID = `--sql 883c42a0-3e2e-42d8-a084-63131516499b
select id, email, coalesce(first_name, ''), coalesce(last_name, ''), coalesce(profile_image_url, ''),
       coalesce(stripe_customer_id, ''), coalesce(stripe_subscription_id, ''),
       current_plan, prompts_used, prompts_limit, created_at, updated_at
from users
where id = $1::uuid
limit 1;
`

// QConsumePrompt increments prompts_used by one only while the user is still
// under prompts_limit. Zero rows affected means the quota is exhausted (or
// the user does not exist); the counter is never pushed past the limit.
const QConsumePrompt = `--sql 13ab7487-d1f7-4049-a98b-697119ab0186
update users
set prompts_used = prompts_used + 1,
    updated_at = now()
where id = $1::uuid
  and prompts_used < prompts_limit;
`

const QUserExists = `--sql a1facc2d-dd46-4304-ab55-f2b007211403
select exists(select 1 from users where id = $1::uuid);
`

const QUpdateUserPlan = `--sql df02cba0-9380-4e85-ba8b-2bdc17df20f9
update users
set current_plan = $2::text,
    prompts_limit = $3::int,
    updated_at = now()
where id = $1::uuid
returning id, email, coalesce(first_name, ''), coalesce(last_name, ''), coalesce(profile_image_url, ''),
          coalesce(stripe_customer_id, ''), coalesce(stripe_subscription_id, ''),
          current_plan, prompts_used, prompts_limit, created_at, updated_at;
`

const QSelectUserIDByEmail = `--sql 5b0fe7a4-06a1-46ce-9f84-0af02c2b1c6c
select id from users where email = $1::text limit 1;
`

// QResetUserUsage is used by operator tooling only; the API never resets
// usage counters.
const QResetUserUsage = `--sql 7a1f3c2d-44f5-4a53-9a0e-2a2f4e2c0d11
update users
set prompts_used = 0,
    updated_at = now()
where id = $1::uuid
returning prompts_limit;
`

const QUpdateUserStripeInfo = `--sql 3c5331eb-e69d-4aa1-92e6-e69bd417ab82
update users
set stripe_customer_id = $2::text,
    stripe_subscription_id = nullif($3::text, ''),
    updated_at = now()
where id = $1::uuid;
`
